package router

import (
	"github.com/indigo-web/lite/http"
)

// Router is what the connection dispatcher talks to. OnStart is called exactly once,
// before the first connection is accepted. After that, OnRequest and OnError may be called
// from many goroutines at once.
type Router interface {
	OnStart() error
	OnRequest(request *http.Request) *http.Response
	// OnError is called when the request can't be processed as usual, e.g. it's malformed.
	// The request is nil if parsing failed.
	OnError(request *http.Request, err error) *http.Response
}
