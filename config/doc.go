// Package config provides configuration loading and validation for synthkit
// tools.
//
// It uses Viper to load configuration from YAML files and environment
// variables, with optional .env file support via godotenv. Environment
// variables override file values using underscore-separated paths
// (e.g., LOGGING_LEVEL overrides logging.level).
package config
