package inbuilt

import (
	"fmt"

	"github.com/indigo-web/lite/http/method"
)

type registrar struct {
	routes map[string]map[method.Method]*Handler
}

func newRegistrar() *registrar {
	return &registrar{
		routes: make(map[string]map[method.Method]*Handler),
	}
}

func (r *registrar) Add(path string, m method.Method, handler *Handler) error {
	methodsMap := r.routes[path]
	if methodsMap == nil {
		methodsMap = make(map[method.Method]*Handler)
	}

	if _, ok := methodsMap[m]; ok {
		return fmt.Errorf("route already registered: %s %s", m, path)
	}

	methodsMap[m] = handler
	r.routes[path] = methodsMap

	return nil
}

func (r *registrar) Get(path string, m method.Method) *Handler {
	return r.routes[path][m]
}

// Len returns the total number of registered routes.
func (r *registrar) Len() (n int) {
	for _, methodsMap := range r.routes {
		n += len(methodsMap)
	}

	return n
}
