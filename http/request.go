package http

import (
	"net"

	"github.com/indigo-web/lite/http/method"
	"github.com/indigo-web/lite/kv"
)

type (
	Headers = *kv.Storage
	Query   = *kv.Storage
)

// Request represents HTTP request. It's never modified once the parser returns it and
// lives as long as the connection it arrived on.
type Request struct {
	// Method is the request method exactly as it was received.
	Method method.Method
	// Path always starts with a slash. It isn't percent-decoded.
	Path string
	// Query holds decoded query parameters in order of their first appearance.
	Query Query
	// Headers holds header pairs as they came. Lookup is case-sensitive.
	Headers Headers
	// Body is everything after the blank line, taken verbatim. It's never checked against
	// the Content-Length, so might be truncated if the request exceeded the read buffer.
	Body []byte
	// Remote holds the remote address. Nil if the request wasn't received from a connection.
	Remote net.Addr
}

func NewRequest() *Request {
	return &Request{
		Query:   kv.New(),
		Headers: kv.New(),
	}
}
