// Package inspector reads an existing init file and prints its build metadata as a table.
package inspector
