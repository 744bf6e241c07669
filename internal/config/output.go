package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat writes JSON instead of text
	JSONFormat bool

	// FullGames includes the PGN text after each game summary
	FullGames bool

	// Flip draws boards from Black's side
	Flip bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{}
}
