// Package config loads the command-line configuration from property-info.yaml,
// PROPERTY_INFO_* environment variables and flags, using viper.
package config
