package render

import (
	"io"
	"net"
	"strconv"

	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/http/status"
)

const (
	protocol   = "HTTP/1.1 "
	crlf       = "\r\n"
	connection = "Connection: close\r\n"
)

var (
	contentType   = []byte("Content-Type: ")
	contentLength = []byte("Content-Length: ")
)

// Engine serializes response heads into its own buffer, which is re-used between the calls.
// Bodies are never copied into it.
type Engine struct {
	buff []byte
}

func NewEngine(buff []byte) *Engine {
	return &Engine{buff: buff[:0]}
}

// Write renders the head and writes it together with the body. Connections support
// vectored writes, so both usually leave in a single syscall.
func (e *Engine) Write(response *http.Response, w io.Writer) error {
	e.buff = Render(e.buff[:0], response)
	buffers := net.Buffers{e.buff, response.Reveal().Body}
	_, err := buffers.WriteTo(w)
	return err
}

// Render appends the serialized response head, including the terminating blank line, to
// the buffer. The response always carries exactly Content-Type, Content-Length and
// Connection: close headers, where the Content-Length is the length of the body.
func Render(buff []byte, response *http.Response) []byte {
	fields := response.Reveal()

	buff = append(buff, protocol...)
	buff = strconv.AppendUint(buff, uint64(fields.Code), 10)
	buff = append(append(append(buff, ' '), status.Text(fields.Code)...), crlf...)

	buff = append(append(append(buff, contentType...), fields.ContentType...), crlf...)
	buff = append(strconv.AppendInt(append(buff, contentLength...), int64(len(fields.Body)), 10), crlf...)
	buff = append(buff, connection...)

	return append(buff, crlf...)
}
