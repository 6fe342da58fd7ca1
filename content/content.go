// Package content resolves names into raw bytes and infers their content type.
package content

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/http/mime"
	"github.com/indigo-web/lite/http/status"
)

// ErrNotFound is returned when the name doesn't resolve into a regular file. It's
// a status.HTTPError, so responding with it results in 404.
var ErrNotFound = status.ErrNotFound

// Provider returns the contents of a named entity. Names are slash-separated relative
// paths, e.g. index.html or css/main.css.
type Provider interface {
	Fetch(name string) ([]byte, error)
}

// Dir serves files from the directory. Every Fetch reads the file anew, nothing is cached.
type Dir struct {
	root string
	fsys fs.FS
}

func NewDir(root string) Dir {
	return Dir{
		root: root,
		fsys: os.DirFS(root),
	}
}

func (d Dir) Fetch(name string) ([]byte, error) {
	if !fs.ValidPath(name) || name == "." {
		return nil, ErrNotFound
	}

	data, err := fs.ReadFile(d.fsys, name)
	switch {
	case err == nil:
		return data, nil
	case errors.Is(err, fs.ErrNotExist), isDirError(err):
		return nil, ErrNotFound
	default:
		return nil, fmt.Errorf("content: %s: %w", path.Join(d.root, name), err)
	}
}

func isDirError(err error) bool {
	var pathErr *fs.PathError
	// reading a directory fails on read, not on open
	return errors.As(err, &pathErr) && pathErr.Op == "read"
}

// Memory serves entries from the map. Names are matched exactly.
type Memory map[string][]byte

func (m Memory) Fetch(name string) ([]byte, error) {
	if !fs.ValidPath(name) {
		return nil, ErrNotFound
	}

	data, found := m[name]
	if !found {
		return nil, ErrNotFound
	}

	return data, nil
}

// ContentType infers the MIME from the name's extension. Unknown or missing extensions
// result in application/octet-stream.
func ContentType(name string) mime.MIME {
	return mime.ByExtension(path.Ext(name))
}

// TryRespond fetches the entity and wraps it into a 200 response with the inferred
// content type. Fetch errors are returned as is.
func TryRespond(p Provider, name string) (*http.Response, error) {
	data, err := p.Fetch(name)
	if err != nil {
		return nil, err
	}

	return http.NewResponse().
		ContentType(ContentType(name)).
		Bytes(data), nil
}

// Respond does the same as TryRespond does, except the error is turned into the response
// by http.Error: a missing entity results in 404, other failures in 500.
func Respond(p Provider, name string) *http.Response {
	response, err := TryRespond(p, name)
	if err != nil {
		return http.Error(err)
	}

	return response
}
