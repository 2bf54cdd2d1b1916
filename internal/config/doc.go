// Package config defines the format-agnostic settings model for graphwalk and
// the Loader interface that fills it from a settings file.
//
// The `config.Model` only records what a settings file said; zero values mean
// "not set". Merging with defaults and command-line flags, and validating the
// result, is the job of the cli and app packages. HCLLoader is the concrete
// loader for HCL settings files.
package config
