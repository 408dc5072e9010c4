package store

import (
	"fmt"
	"io"
	"os"
	"path"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/uuid"

	"github.com/matzehuels/pomgen/pkg/errors"
)

const (
	dirPerm  = 0755
	filePerm = 0644
)

// FS implements Store on top of a go-billy filesystem.
//
// Writes go to a uniquely named temporary file that is renamed over the
// target, so readers never observe a partially written file. A mutex
// serializes compare-and-write within one FS value; separate processes
// writing the same path must coordinate externally.
type FS struct {
	mu sync.Mutex
	fs billy.Filesystem
}

// NewFS creates a store backed by the given go-billy filesystem.
func NewFS(fsys billy.Filesystem) *FS {
	return &FS{fs: fsys}
}

// NewOSFS creates a store rooted at dir on the native filesystem.
func NewOSFS(dir string) *FS {
	return NewFS(osfs.New(dir))
}

// NewMemory creates an in-memory store.
func NewMemory() *FS {
	return NewFS(memfs.New())
}

// CreateOrUpdateIfDifferent implements Store.
func (s *FS) CreateOrUpdateIfDifferent(name string, content []byte) (bool, error) {
	if err := errors.ValidatePath(name); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := util.ReadFile(s.fs, name)
	switch {
	case err == nil:
		if Hash(existing) == Hash(content) {
			return false, nil
		}
	case os.IsNotExist(err):
	default:
		return false, fmt.Errorf("read %q: %w", name, err)
	}

	if err := s.writeAtomic(name, content); err != nil {
		return false, err
	}
	return true, nil
}

// OpenForWrite implements Store.
func (s *FS) OpenForWrite(name string) (io.WriteCloser, error) {
	if err := errors.ValidatePath(name); err != nil {
		return nil, err
	}
	if err := s.fs.MkdirAll(path.Dir(name), dirPerm); err != nil {
		return nil, fmt.Errorf("mkdir %q: %w", path.Dir(name), err)
	}
	f, err := s.fs.Create(name)
	if err != nil {
		return nil, fmt.Errorf("create %q: %w", name, err)
	}
	return f, nil
}

// ReadFile returns the content stored at name.
func (s *FS) ReadFile(name string) ([]byte, error) {
	return util.ReadFile(s.fs, name)
}

// Raw returns the underlying go-billy filesystem.
func (s *FS) Raw() billy.Filesystem {
	return s.fs
}

func (s *FS) writeAtomic(name string, content []byte) error {
	dir := path.Dir(name)
	if err := s.fs.MkdirAll(dir, dirPerm); err != nil {
		return fmt.Errorf("mkdir %q: %w", dir, err)
	}

	tmp := path.Join(dir, "."+path.Base(name)+"."+uuid.NewString()+".tmp")
	if err := util.WriteFile(s.fs, tmp, content, filePerm); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("write %q: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, name); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("rename %q: %w", name, err)
	}
	return nil
}

// Ensure FS implements Store.
var _ Store = (*FS)(nil)
