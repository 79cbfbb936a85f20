package tutor

// Config holds generation settings for tutor prompts.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults for tutoring output.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   1024,
		Temperature: 0.4,
	}
}

// gradingTemperature keeps scoring as deterministic as the model allows.
const gradingTemperature = 0.1
