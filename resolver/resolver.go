package resolver

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	securejoin "github.com/cyphar/filepath-securejoin"
	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// Resolution failure kinds. Transports map these to protocol status codes;
// traversal attempts get ErrForbidden so they can be told apart from plain
// missing files (403 vs 404 on HTTP).
var (
	ErrNotFound  = errors.New("not found")
	ErrForbidden = errors.New("forbidden")
)

// Root is an immutable handle on the serving root. It is created once at
// startup and never mutated, so concurrent Resolve calls need no locking.
type Root struct {
	base string // absolute path of the serving root
	fs   billy.Filesystem
}

// Target is a successfully resolved request path: a regular file strictly
// inside the root.
type Target struct {
	Path string // absolute path under the root
	MIME string
	Size int64

	rel string // root-relative path used for filesystem access
}

// Open verifies that dir exists and is a directory, and returns a Root
// rooted there. The returned filesystem is chroot-bounded to dir.
func Open(dir string) (*Root, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolve root %q: %w", dir, err)
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("serving root %q: %w", abs, err)
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("serving root %q is not a directory", abs)
	}
	return &Root{base: abs, fs: osfs.New(abs)}, nil
}

// NewWithFS returns a Root over an arbitrary filesystem, reported as rooted
// at base. Used by tests (memfs) and embedders.
func NewWithFS(base string, fs billy.Filesystem) *Root {
	return &Root{base: base, fs: fs}
}

// Dir returns the absolute path of the serving root.
func (r *Root) Dir() string { return r.base }

// FS exposes the root's filesystem, e.g. for an NFS export or the startup
// listing. Callers must not write through it.
func (r *Root) FS() billy.Filesystem { return r.fs }

// Resolve maps an untrusted request path to a servable file or an error.
// "" and "/" rewrite to "/index.html". Paths whose normalization would leave
// the root fail with ErrForbidden; anything that is not an existing regular
// file fails with ErrNotFound. Resolve has no side effects beyond metadata
// reads.
func (r *Root) Resolve(reqPath string) (Target, error) {
	if reqPath == "" || reqPath == "/" {
		reqPath = "/index.html"
	}
	if strings.ContainsRune(reqPath, 0) {
		return Target{}, ErrForbidden
	}
	// Escape detection happens on the unrooted form; cleaning an
	// already-rooted path silently swallows leading ".." segments.
	unrooted := path.Clean(strings.TrimPrefix(reqPath, "/"))
	if unrooted == ".." || strings.HasPrefix(unrooted, "../") {
		return Target{}, ErrForbidden
	}
	rel := strings.TrimPrefix(path.Clean("/"+reqPath), "/")
	if rel == "" {
		// The root itself; directories are never served.
		return Target{}, ErrNotFound
	}
	abs, err := securejoin.SecureJoin(r.base, rel)
	if err != nil {
		return Target{}, ErrForbidden
	}
	fi, err := r.fs.Stat(rel)
	if err != nil {
		return Target{}, ErrNotFound
	}
	if fi.IsDir() || !fi.Mode().IsRegular() {
		return Target{}, ErrNotFound
	}
	return Target{
		Path: abs,
		MIME: TypeByExtension(path.Ext(rel)),
		Size: fi.Size(),
		rel:  rel,
	}, nil
}

// Open returns the byte stream for a previously resolved target.
func (r *Root) Open(t Target) (io.ReadCloser, error) {
	f, err := r.fs.Open(t.rel)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", t.rel, err)
	}
	return f, nil
}
