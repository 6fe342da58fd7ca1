package inbuilt

import (
	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/http/status"
)

// AllErrors is the pseudo-code, which handler is called if there's no handler for the
// specific code.
const AllErrors status.Code = 0

// ErrorHandler produces the response for the error. The request is nil if the error
// happened before it could be parsed.
type ErrorHandler func(request *http.Request, err error) *http.Response

type errorHandlers map[status.Code]ErrorHandler

func newErrorHandlers() errorHandlers {
	return errorHandlers{
		AllErrors: genericErrorHandler,
	}
}

func genericErrorHandler(_ *http.Request, err error) *http.Response {
	return http.Error(err)
}

// RouteError adds an error handler for the passed codes. If no codes are passed, the
// handler replaces the generic one, serving all the errors without own handler.
func (r *Router) RouteError(handler ErrorHandler, codes ...status.Code) *Router {
	r.mustBeMutable()

	if len(codes) == 0 {
		codes = append(codes, AllErrors)
	}

	for _, code := range codes {
		r.errHandlers[code] = handler
	}

	return r
}
