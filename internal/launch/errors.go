package launch

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownProfile indicates that a launcher profile name is not recognised
	ErrUnknownProfile = errors.New("unknown launcher profile")
)

// ConfigurationError reports an environment variable that could not be converted
type ConfigurationError struct {
	Variable string
	Value    string
	Expected string
	Err      error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("Invalid %s value: %s. Please provide a valid %s.", e.Variable, e.Value, e.Expected)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}
