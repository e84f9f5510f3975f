package explorer

// Result describes the outcome of one exploration run. On a fault the
// statistics reflect progress up to the fault, for diagnostic purposes only.
type Result struct {
	Success        bool
	StatesExplored int     // distinct states expanded, equals the visited set size
	MaxStackDepth  int     // largest pending stack size observed before a pop
	LoadFactor     float64 // visited states relative to the configured table size
	ErrorMessage   string  // empty on success, names the fault otherwise
}
