package config

import "fmt"

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateConfig checks that every field the server cannot run without is set.
func ValidateConfig(cfg *Config) error {
	if cfg.JWTSecret == "" {
		return ValidationError{Field: "JWT_SECRET", Message: "is required"}
	}
	if cfg.ServerPort == "" {
		return ValidationError{Field: "SERVER_PORT", Message: "is required"}
	}
	if cfg.DBHost == "" || cfg.DBPort == "" {
		return ValidationError{Field: "DB_HOST/DB_PORT", Message: "are required"}
	}
	if cfg.DBName == "" {
		return ValidationError{Field: "DB_NAME", Message: "is required"}
	}
	return nil
}
