package utils

import "os"

// GetEnvVariable reads an environment variable with a fallback default.
func GetEnvVariable(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
