package catalog

import "errors"

// ErrNotFound indicates the requested record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrDuplicatePath indicates a record for the path already exists.
var ErrDuplicatePath = errors.New("path already cataloged")
