package vegsum

import (
	"fmt"
)

// FileError records a failure confined to a single input file. The run
// continues past it; the file simply contributes nothing.
type FileError struct {
	// Name is the file name within the input folder.
	Name string
	// Err is the underlying codec or I/O error.
	Err error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Name, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}
