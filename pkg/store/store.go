// Package store persists generated files through an idempotent write.
//
// The [Store] interface is the persistence capability consumed by the
// descriptor engine. [FS] implements it over a go-billy filesystem, so the
// same code writes to disk ([NewOSFS]) or to memory ([NewMemory]).
//
// # Idempotent Writes
//
// [Store.CreateOrUpdateIfDifferent] compares the SHA-256 of the new content
// with the file already on disk and skips the write when they match:
//
//	s := store.NewOSFS(projectDir)
//	written, err := s.CreateOrUpdateIfDifferent("core/pom.xml", data)
//	// written == false when core/pom.xml already held data
package store

import (
	"io"
)

// Store is the persistence capability used to write generated files.
// Paths are slash-separated and relative to the store's root.
type Store interface {
	// CreateOrUpdateIfDifferent writes content to path unless the file
	// already holds exactly that content. It reports whether a write happened.
	CreateOrUpdateIfDifferent(path string, content []byte) (bool, error)

	// OpenForWrite creates or truncates path and returns a handle for
	// streaming content into it. The caller must close the handle.
	OpenForWrite(path string) (io.WriteCloser, error)
}
