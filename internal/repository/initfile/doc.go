// Package initfile persists the generated init file and reads its metadata back.
//
// Save overwrites the file with rendered text. Load parses the __version__,
// __git_sha__ and __build_platform__ assignments of an existing file.
package initfile
