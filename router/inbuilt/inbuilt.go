package inbuilt

import (
	"fmt"
	"strings"

	"github.com/indigo-web/lite/content"
	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/http/method"
	"github.com/indigo-web/lite/http/status"
	"github.com/indigo-web/lite/router"
)

var _ router.Router = new(Router)

const DefaultStaticPrefix = "/static/"

// Router is a built-in implementation of router.Router interface. Routes are matched
// by exact method and path. GET requests, which didn't match any route, but have the
// static prefix, are served from the static content provider.
//
// Routes must be registered before the server starts. Once OnStart is called, the
// table is frozen and is only read, so it's safe to share it between connections.
type Router struct {
	registrar    *registrar
	errHandlers  errorHandlers
	staticPrefix string
	static       content.Provider
	frozen       bool
}

// New constructs a new instance of inbuilt router
func New() *Router {
	return &Router{
		registrar:    newRegistrar(),
		errHandlers:  newErrorHandlers(),
		staticPrefix: DefaultStaticPrefix,
	}
}

// Get registers a handler for GET requests to the path.
func (r *Router) Get(path string, handler NoBody) *Router {
	return r.route(method.GET, path, newNoBody(handler))
}

// Post registers a handler for POST requests to the path. The request body is decoded
// as an urlencoded form and passed to the handler.
func (r *Router) Post(path string, handler WithForm) *Router {
	return r.route(method.POST, path, newWithForm(handler))
}

func (r *Router) route(m method.Method, path string, handler *Handler) *Router {
	r.mustBeMutable()

	if !strings.HasPrefix(path, "/") {
		panic(fmt.Sprintf("lite: route path must start with a slash: %q", path))
	}

	if err := r.registrar.Add(path, m, handler); err != nil {
		panic("lite: " + err.Error())
	}

	return r
}

func (r *Router) mustBeMutable() {
	if r.frozen {
		panic("lite: router can't be modified after the server has started")
	}
}

// OnStart freezes the router. Any attempt to modify it afterwards panics.
func (r *Router) OnStart() error {
	r.frozen = true
	return nil
}

// OnRequest routes the request to its handler.
func (r *Router) OnRequest(request *http.Request) *http.Response {
	resolution := r.Resolve(request.Method, request.Path)

	switch resolution.Kind {
	case Matched:
		return resolution.Handler.Call(request)
	case StaticHint:
		if r.static == nil {
			return r.OnError(request, status.ErrNotFound)
		}

		response, err := content.TryRespond(r.static, resolution.Name)
		if err != nil {
			return r.OnError(request, err)
		}

		return response
	default:
		return r.OnError(request, status.ErrNotFound)
	}
}

// OnError picks the error handler by the error's code, falling back to the handler of
// all errors.
func (r *Router) OnError(request *http.Request, err error) *http.Response {
	handler, found := r.errHandlers[status.CodeOf(err)]
	if !found {
		handler = r.errHandlers[AllErrors]
	}

	return handler(request, err)
}

// Routes returns the number of registered routes.
func (r *Router) Routes() int {
	return r.registrar.Len()
}
