package automaton

import "math"

// Config configures the alphabet and memory layout of an Automaton.
//
// The alphabet is the contiguous range of symbol codes
// [MinSymbol, MinSymbol+AlphabetSize). It is fixed for the lifetime of the
// automaton and applies to every appended symbol and every query pattern.
type Config struct {
	// MinSymbol is the lowest symbol code in the alphabet.
	//
	// Default: 0
	MinSymbol int

	// AlphabetSize is the number of symbol codes in the alphabet.
	//
	// Default: 256 (every byte value)
	AlphabetSize int

	// DenseLimit is the largest AlphabetSize that still uses a fixed-width
	// transition row per state. Larger alphabets use a sparse sorted row,
	// trading a binary search per lookup for memory proportional to the
	// number of transitions.
	//
	// Default: 64
	// Memory usage (dense): 4 * AlphabetSize bytes per state
	DenseLimit int

	// ExpectedLength is a capacity hint for the number of symbols that will
	// be appended. Each symbol adds at most two states, so storage for
	// 2*ExpectedLength+1 states is reserved up front.
	//
	// Default: 0 (grow on demand)
	ExpectedLength int
}

// DefaultConfig returns a configuration for byte sequences.
//
// Every byte value is a valid symbol. Since 256 exceeds the default
// DenseLimit, transition rows are sparse.
func DefaultConfig() Config {
	return Config{
		MinSymbol:    0,
		AlphabetSize: 256,
		DenseLimit:   64,
	}
}

// LowercaseConfig returns a configuration for the alphabet 'a'..'z'
// with dense transition rows.
func LowercaseConfig() Config {
	return DefaultConfig().WithAlphabet('a', 26)
}

// Validate checks if the configuration is valid.
// Returns an error if any parameter is out of acceptable range.
func (c *Config) Validate() error {
	if c.AlphabetSize <= 0 {
		return &Error{
			Kind:    InvalidConfig,
			Message: "AlphabetSize must be > 0",
		}
	}

	if c.MinSymbol < math.MinInt32 || c.MinSymbol > math.MaxInt32 ||
		c.AlphabetSize > math.MaxInt32 ||
		int64(c.MinSymbol)+int64(c.AlphabetSize)-1 > math.MaxInt32 {
		return &Error{
			Kind:    InvalidConfig,
			Message: "alphabet range must fit in int32",
		}
	}

	if c.DenseLimit < 0 {
		return &Error{
			Kind:    InvalidConfig,
			Message: "DenseLimit must be >= 0",
		}
	}

	if c.ExpectedLength < 0 {
		return &Error{
			Kind:    InvalidConfig,
			Message: "ExpectedLength must be >= 0",
		}
	}

	return nil
}

// WithAlphabet returns a new config with the alphabet [minSymbol, minSymbol+size)
func (c Config) WithAlphabet(minSymbol, size int) Config {
	c.MinSymbol = minSymbol
	c.AlphabetSize = size
	return c
}

// WithDenseLimit returns a new config with the specified dense row limit
func (c Config) WithDenseLimit(limit int) Config {
	c.DenseLimit = limit
	return c
}

// WithExpectedLength returns a new config with the specified capacity hint
func (c Config) WithExpectedLength(n int) Config {
	c.ExpectedLength = n
	return c
}

// dense reports whether this alphabet uses fixed-width transition rows.
func (c *Config) dense() bool {
	return c.AlphabetSize <= c.DenseLimit
}

// offset maps a symbol to its zero-based position in the alphabet.
func (c *Config) offset(symbol int) (uint32, bool) {
	if symbol < c.MinSymbol {
		return 0, false
	}
	// symbol >= MinSymbol, so the unsigned difference is exact on any int width.
	off := uint64(symbol) - uint64(c.MinSymbol)
	if off >= uint64(c.AlphabetSize) {
		return 0, false
	}
	return uint32(off), true //nolint:gosec // G115: off < AlphabetSize <= MaxInt32
}

// symbol maps an alphabet offset back to its symbol code.
func (c *Config) symbol(off uint32) int {
	return c.MinSymbol + int(off)
}
