package botconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a bot configuration from a YAML file.
func Load(path string) (*TrainingBot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bot config: %w", err)
	}
	return Parse(data)
}

// Defaults applied to fields the YAML leaves unset. An explicit zero
// in the file is respected.
const (
	DefaultPassScore  = 70
	DefaultMaxRetries = 1
)

// Parse decodes and validates YAML bot configuration.
func Parse(data []byte) (*TrainingBot, error) {
	// Decoding into a pre-populated struct keeps the defaults only for
	// keys the document does not mention.
	bot := TrainingBot{
		PassScore:   DefaultPassScore,
		MaxRetries:  DefaultMaxRetries,
		FailureMode: FailurePermissive,
	}
	if err := yaml.Unmarshal(data, &bot); err != nil {
		return nil, fmt.Errorf("parse bot config: %w", err)
	}

	if bot.FailureMode == "" {
		bot.FailureMode = FailurePermissive
	}

	if err := bot.Validate(); err != nil {
		return nil, err
	}
	return &bot, nil
}
