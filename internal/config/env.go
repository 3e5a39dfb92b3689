package config

import (
	"flag"
	"os"
	"strings"
)

// getEnvString returns the value of EnvPrefix+key, or defaultVal if unset.
func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		return val
	}
	return defaultVal
}

// getEnvBool returns the value of EnvPrefix+key parsed as a bool, or
// defaultVal if unset or unrecognized. Accepts "true", "1", "yes" and
// "false", "0", "no" (case-insensitive).
func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(EnvPrefix + key); val != "" {
		switch strings.ToLower(val) {
		case "true", "1", "yes":
			return true
		case "false", "0", "no":
			return false
		}
	}
	return defaultVal
}

// isFlagSet checks if a flag was explicitly set on the command line.
func isFlagSet(fs *flag.FlagSet, name string) bool {
	found := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// applyEnvOverrides applies environment variable values for any setting
// not given on the command line. Priority: flags > environment > defaults.
//
// Supported environment variables:
//   - VIETA_INPUT: Input document path
//   - VIETA_FORMAT: Input format (auto, json, yaml)
//   - VIETA_ENGINE: Product engine
//   - VIETA_OUTPUT: Report file path
//   - VIETA_LOG_LEVEL: Diagnostic log level
//   - VIETA_JSON: JSON report (bool: true/false, 1/0, yes/no)
//   - VIETA_QUIET: Quiet mode (bool)
//   - VIETA_NO_COLOR: Disable colored output (bool)
func applyEnvOverrides(config *AppConfig, fs *flag.FlagSet, inputSet bool) {
	applyStringOverrides(config, fs, inputSet)
	applyBooleanOverrides(config, fs)
}

func applyStringOverrides(config *AppConfig, fs *flag.FlagSet, inputSet bool) {
	if !inputSet {
		config.Input = getEnvString("INPUT", config.Input)
	}
	if !isFlagSet(fs, "format") {
		config.Format = getEnvString("FORMAT", config.Format)
	}
	if !isFlagSet(fs, "engine") {
		config.Engine = getEnvString("ENGINE", config.Engine)
	}
	if !isFlagSet(fs, "output") && !isFlagSet(fs, "o") {
		config.OutputFile = getEnvString("OUTPUT", config.OutputFile)
	}
	if !isFlagSet(fs, "log-level") {
		config.LogLevel = getEnvString("LOG_LEVEL", config.LogLevel)
	}
}

func applyBooleanOverrides(config *AppConfig, fs *flag.FlagSet) {
	if !isFlagSet(fs, "json") {
		config.JSONOutput = getEnvBool("JSON", config.JSONOutput)
	}
	if !isFlagSet(fs, "quiet") && !isFlagSet(fs, "q") {
		config.Quiet = getEnvBool("QUIET", config.Quiet)
	}
	if !isFlagSet(fs, "no-color") {
		config.NoColor = getEnvBool("NO_COLOR", config.NoColor)
	}
}
