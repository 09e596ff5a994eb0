package halcyon

import (
	"os"
	"strconv"
	"strings"
)

// GetenvOrDefault returns the trimmed value of the environment variable key,
// or defaultValue when it is unset or blank.
func GetenvOrDefault(key, defaultValue string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue
	}

	return value
}

// GetenvBoolOrDefault parses the environment variable key as a bool,
// falling back to defaultValue when it is unset or not a valid bool.
func GetenvBoolOrDefault(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(GetenvOrDefault(key, ""))
	if err != nil {
		return defaultValue
	}

	return value
}
