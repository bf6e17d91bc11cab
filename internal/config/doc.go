// Package config resolves generator settings. Values come, highest first,
// from SKELGEN_* environment variables, the project profile (.skelgen.yaml in
// the working directory), the user config file (~/.skelgen/config.yaml), and
// built-in defaults that match the compiler's source layout.
package config
