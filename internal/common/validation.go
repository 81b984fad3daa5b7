package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ValidateNotEmpty validates that a string is not empty
func ValidateNotEmpty(value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("value cannot be empty")
	}
	return nil
}

// ParseFileMode parses an octal permission string such as "0755" or "644"
func ParseFileMode(mode string) (os.FileMode, error) {
	mode = strings.TrimSpace(mode)
	if mode == "" {
		return 0, fmt.Errorf("file mode cannot be empty")
	}

	// Mode bits only; ownership and special bits are out of scope
	p, err := strconv.ParseUint(mode, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid file mode (must be octal): %s", mode)
	}
	if p > 0777 {
		return 0, fmt.Errorf("file mode out of range (max 0777): %s", mode)
	}

	return os.FileMode(p), nil
}

// ValidateFileMode validates an octal permission string
func ValidateFileMode(mode string) error {
	_, err := ParseFileMode(mode)
	return err
}

// ValidateLogLevel validates a log level name
func ValidateLogLevel(level string) error {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
		return nil
	}
	return fmt.Errorf("invalid log level: %s", level)
}
