package cli

import (
	"fmt"
	"os"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("TENNIS_SERVER", "http://localhost:8080"),
		Output:    OutputText,
		Verbose:   false,
	}
}

// Validate checks the flag values that cobra cannot constrain itself
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
		return nil
	default:
		return &FlagError{Flag: "output", Value: c.Output, Allowed: "text, json"}
	}
}

// FlagError reports an unsupported flag value
type FlagError struct {
	Flag    string
	Value   string
	Allowed string
}

func (e *FlagError) Error() string {
	return fmt.Sprintf("invalid value %q for --%s (allowed: %s)", e.Value, e.Flag, e.Allowed)
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
