// Package cli defines the Cobra command tree for the skelgen CLI. The root
// command generates a skeleton; each other file registers one supporting
// command. Commands delegate to internal packages for the work and only
// handle arguments, output formatting, and exit status.
package cli
