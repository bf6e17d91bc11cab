// Package profile handles parsing and validation of the per-project
// .skelgen.yaml profile. Profiles are checked against an embedded JSON Schema
// before their values are trusted.
package profile
