// Package options contains the program options.
package options

// Default values for the explorer tunables. MaxRegister and TableSize
// directly bound the size of the explorable state space, they are exposed
// as flags and as fields of Explorer.
const (
	DefaultMaxRegister      = 1000
	DefaultTableSize        = 65536
	DefaultMaxStates        = 1 << 22
	DefaultProgressInterval = 10000
)

// Program contains the command line options of the checker binary.
type Program struct {
	Input  string // program file to check
	Sample string // name of a built-in sample program to check instead

	Debug   bool
	Quiet   bool
	Verbose bool
}

// Explorer defines options to control a single exploration run.
type Explorer struct {
	MaxRegister int // register values are clamped to [0, MaxRegister]
	TableSize   int // visited table size used for load factor reporting
	MaxStates   int // upper bound of distinct states before the run is aborted

	// PreciseBranches makes conditional jumps produce exactly one successor,
	// chosen by the register value. The default explores both the taken and
	// the not-taken edge of every reachable jnz.
	PreciseBranches bool

	Verbose          bool // emit progress while exploring
	ProgressInterval int  // states between progress messages
}

// NewExplorer returns a new explorer options instance with default values.
func NewExplorer() Explorer {
	return Explorer{
		MaxRegister:      DefaultMaxRegister,
		TableSize:        DefaultTableSize,
		MaxStates:        DefaultMaxStates,
		ProgressInterval: DefaultProgressInterval,
	}
}
