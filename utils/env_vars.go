package utils

import (
	"log"
	"os"
	"strconv"
)

type EnvValue interface {
	string | int | bool | float64
}

// GetEnv reads an environment variable, falling back to defaultValue when it
// is unset or empty.
func GetEnv[T EnvValue](envVar string, defaultValue T) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		return defaultValue
	}
	return parseEnv[T](envVar, envValue)
}

// GetRequiredEnv reads an environment variable and exits when it is missing.
func GetRequiredEnv[T EnvValue](envVar string) T {
	envValue, ok := os.LookupEnv(envVar)
	if !ok || envValue == "" {
		log.Fatalf("%s environment variable is required", envVar)
	}
	return parseEnv[T](envVar, envValue)
}

func parseEnv[T EnvValue](envVar, envValue string) T {
	var out T
	switch ptr := any(&out).(type) {
	case *string:
		*ptr = envValue
	case *int:
		intValue, err := strconv.Atoi(envValue)
		if err != nil {
			log.Fatalf("%s environment variable is not valid: '%s' is not an integer", envVar, envValue)
		}
		*ptr = intValue
	case *bool:
		boolValue, err := strconv.ParseBool(envValue)
		if err != nil {
			log.Fatalf("%s environment variable is not valid: '%s' cannot be converted to bool", envVar, envValue)
		}
		*ptr = boolValue
	case *float64:
		floatValue, err := strconv.ParseFloat(envValue, 64)
		if err != nil {
			log.Fatalf("%s environment variable is not valid: '%s' is not a number", envVar, envValue)
		}
		*ptr = floatValue
	}
	return out
}
