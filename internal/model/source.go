// Package model defines the data structures shared by the linter layers.
package model

// Path represents a file system path.
type Path string

// File represents a source code file on disk.
type File struct {
	FullPath  Path
	ShortPath Path
	Hash      string
}

// Source is one Swift file scheduled for linting.
type Source struct {
	Origin *File
}
