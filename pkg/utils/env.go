package utils

import "os"

// Getenv retrieves the value of the environment variable named by key,
// falling back to the given default when it is unset or empty.
func Getenv(key, fallback string) string {
	value := os.Getenv(key)
	if len(value) == 0 {
		return fallback
	}
	return value
}
