// Package generator writes the package init file with the build metadata.
//
// A run resolves the version (explicit or from the version file), the short
// git revision (source and binary distributions only) and the build platform
// (binary distributions only), renders the init template and overwrites the
// output file. Unresolved fields are written as "n/a".
package generator
