// Package skeleton generates new AST node source files from a template. It
// powers the root "skelgen <name>" command: the template is copied line by
// line with every occurrence of the placeholder token replaced by the class
// name, and written next to the other nodes in the output directory.
package skeleton
