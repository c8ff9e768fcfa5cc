package mapping

import "fmt"

// ConfigError reports a configuration file that cannot be read, parsed or
// validated. It is fatal at load time.
type ConfigError struct {
	// Path is the configuration file, empty when parsing raw bytes.
	Path string
	Err  error
}

// Error implements error.
func (e *ConfigError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("invalid configuration: %v", e.Err)
	}

	return fmt.Sprintf("invalid configuration %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}
