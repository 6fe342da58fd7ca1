package http

import (
	"github.com/indigo-web/lite/http/mime"
	"github.com/indigo-web/lite/http/status"
	"github.com/indigo-web/utils/uf"
	json "github.com/json-iterator/go"
)

const DefaultContentType = mime.HTML

// Bodies of the responses produced by the engine itself.
const (
	NotFoundBody            = "<h1>404 Not Found</h1><p>The page you requested does not exist.</p>"
	InternalServerErrorBody = "<h1>500 Internal Server Error</h1>"
)

var errorPages = map[status.Code]string{
	status.NotFound:            NotFoundBody,
	status.InternalServerError: InternalServerErrorBody,
}

// Fields are the values filled by the builder. Serializer reads them directly.
type Fields struct {
	Code        status.Code
	ContentType mime.MIME
	Body        []byte
}

type Response struct {
	fields *Fields
}

// NewResponse returns a new instance of the Response object with status code set to 200 OK,
// text/html content-type and empty body.
func NewResponse() *Response {
	return &Response{
		fields: &Fields{
			Code:        status.OK,
			ContentType: DefaultContentType,
		},
	}
}

// Code sets the response code. Codes the engine doesn't know a reason phrase of are
// still sent as is, just with "OK" as the reason.
func (r *Response) Code(code status.Code) *Response {
	r.fields.Code = code
	return r
}

// ContentType sets a custom Content-Type header value.
func (r *Response) ContentType(value mime.MIME) *Response {
	r.fields.ContentType = value
	return r
}

// String sets the response's body to the passed string
func (r *Response) String(body string) *Response {
	return r.Bytes(uf.S2B(body))
}

// Bytes sets the response's body to passed slice WITHOUT COPYING. Changing
// the passed slice later will affect the response by itself
func (r *Response) Bytes(body []byte) *Response {
	r.fields.Body = body
	return r
}

// Write implements io.Writer interface. It always returns n=len(b) and err=nil
func (r *Response) Write(b []byte) (n int, err error) {
	r.fields.Body = append(r.fields.Body, b...)
	return len(b), nil
}

// TryJSON serializes the model into the body and sets application/json content-type.
// The previous body is dropped, not overwritten, as it might reference read-only memory.
func (r *Response) TryJSON(model any) (*Response, error) {
	r.fields.Body = nil
	stream := json.ConfigDefault.BorrowStream(r)
	stream.WriteVal(model)
	err := stream.Flush()
	if err == nil {
		err = stream.Error
	}
	json.ConfigDefault.ReturnStream(stream)

	return r.ContentType(mime.JSON), err
}

// JSON does the same as TryJSON does, except returned error is being implicitly wrapped
// by Error
func (r *Response) JSON(model any) *Response {
	resp, err := r.TryJSON(model)
	if err != nil {
		return r.Error(err)
	}

	return resp
}

// Error turns the response into an error page. If passed err is nil, nothing will happen.
// The code is taken from status.HTTPError, any other error results in 500. Codes having
// a page of their own get it as a body, others get the error message as text.
func (r *Response) Error(err error) *Response {
	if err == nil {
		return r
	}

	code := status.CodeOf(err)
	r.Code(code).ContentType(DefaultContentType)

	if page, found := errorPages[code]; found {
		return r.String(page)
	}

	return r.ContentType(mime.Plain).String(err.Error())
}

// Reveal returns a struct with values, filled by builder. Used mostly in internal purposes
func (r *Response) Reveal() *Fields {
	return r.fields
}

// String is a shorthand for NewResponse().String(...)
func String(str string) *Response {
	return NewResponse().String(str)
}

// Bytes is a shorthand for NewResponse().Bytes(...)
func Bytes(b []byte) *Response {
	return NewResponse().Bytes(b)
}

// JSON is a shorthand for NewResponse().JSON(...)
func JSON(model any) *Response {
	return NewResponse().JSON(model)
}

// Error is a shorthand for NewResponse().Error(...)
func Error(err error) *Response {
	return NewResponse().Error(err)
}

// NotFound returns the 404 response with the fixed not-found page.
func NotFound() *Response {
	return Error(status.ErrNotFound)
}
