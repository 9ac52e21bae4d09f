// Package commands provides the command-line interface for lockstr.
//
// It implements the encrypt, decrypt, and check commands. Command-line parsing,
// configuration validation, and environment variable binding are handled
// through cobra and viper.
package commands
