package config

import "github.com/kutorol/my-own-collection/internal/common"

// Configuration key constants to prevent typos and enable autocomplete
const (
	// Creation modes
	KeyDirMode  = "DIR_MODE"  // Mode for parent directories created on the way to a file
	KeyFileMode = "FILE_MODE" // Mode for newly created files

	// Logging
	KeyLogLevel = "LOG_LEVEL"
)

// Default values for configuration keys
var Defaults = map[string]string{
	KeyDirMode:  "0755",
	KeyFileMode: "0644",
	KeyLogLevel: "warn",
}

// Validators check values before they are stored
var Validators = map[string]func(string) error{
	KeyDirMode:  common.ValidateFileMode,
	KeyFileMode: common.ValidateFileMode,
	KeyLogLevel: common.ValidateLogLevel,
}

// ValidateValue checks a value against the validator registered for key.
// Keys without a validator accept any value.
func ValidateValue(key, value string) error {
	if validate, ok := Validators[key]; ok {
		return validate(value)
	}
	return nil
}
