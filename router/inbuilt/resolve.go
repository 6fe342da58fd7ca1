package inbuilt

import (
	"strings"

	"github.com/indigo-web/lite/http/method"
)

type ResolutionKind uint8

const (
	Miss ResolutionKind = iota
	Matched
	StaticHint
)

func (k ResolutionKind) String() string {
	switch k {
	case Matched:
		return "Matched"
	case StaticHint:
		return "StaticHint"
	default:
		return "Miss"
	}
}

// Resolution is the outcome of the route lookup. Handler is set for Matched only, Name
// for StaticHint only.
type Resolution struct {
	Kind    ResolutionKind
	Handler *Handler
	// Name is the path with the static prefix cut off.
	Name string
}

// Resolve looks up the route by exact method and path. Repeated calls with the same key
// return the same handler. If nothing matched, but it's a GET request with the static prefix,
// the static hint is returned.
func (r *Router) Resolve(m method.Method, path string) Resolution {
	if handler := r.registrar.Get(path, m); handler != nil {
		return Resolution{Kind: Matched, Handler: handler}
	}

	if m == method.GET && strings.HasPrefix(path, r.staticPrefix) {
		return Resolution{Kind: StaticHint, Name: path[len(r.staticPrefix):]}
	}

	return Resolution{Kind: Miss}
}
