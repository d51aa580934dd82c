package config

import (
	"os"
	"strconv"
)

// GetEnv lê uma variável de ambiente com valor padrão.
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// GetEnvAsInt lê uma variável de ambiente numérica com valor padrão.
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
