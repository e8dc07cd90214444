package interfaces

import "errors"

// ErrConcurrentUpdate is returned by repositories when a conditional write
// lost against another writer: the stored item no longer matches the state
// the caller read.
var ErrConcurrentUpdate = errors.New("item was modified concurrently")
