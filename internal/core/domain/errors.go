package domain

import "fmt"

// ErrNotFound is returned, wrapped with the kind of the requested resource,
// whenever the remote explorer reports that the resource doesn't exist.
// Callers detect it with errors.Is.
var ErrNotFound = fmt.Errorf("not found")
