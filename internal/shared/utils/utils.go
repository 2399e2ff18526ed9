package utils

import "os"

// GetEnvVariable reads an environment variable with a fallback default.
func GetEnvVariable(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// StringPtr converts a string into a *string, mapping "" to nil.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
