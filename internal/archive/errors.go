package archive

import "errors"

var (
	// ErrSourceFile indicates the backup source could not be read
	// (missing, unreadable, or a directory).
	ErrSourceFile = errors.New("cannot read source file")
	// ErrArchiveWrite indicates the destination archive could not be
	// created or written.
	ErrArchiveWrite = errors.New("cannot write archive")
)
