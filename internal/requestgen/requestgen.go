// Package requestgen generates raw requests for tests and benchmarks.
package requestgen

import (
	"github.com/dchest/uniuri"
	"github.com/indigo-web/lite/kv"
)

// Headers returns n headers, the last of which is Host. Others have unique random names
// and values.
func Headers(n int) *kv.Storage {
	hdrs := kv.NewPrealloc(n)

	for i := 0; i < n-1; i++ {
		// lengths differ, so names never collide
		hdrs.Add("x-"+uniuri.NewLen(i+1), uniuri.NewLen(64))
	}

	return hdrs.Add("Host", "localhost")
}

func HeadersBlock(hdrs *kv.Storage) (buff []byte) {
	for key, value := range hdrs.Pairs() {
		buff = append(buff, key+": "+value+"\r\n"...)
	}

	return buff
}

// Generate builds the request. The body is appended after the blank line as is, the
// Content-Length isn't added implicitly.
func Generate(method, target string, hdrs *kv.Storage, body string) (request []byte) {
	request = append(request, method+" "+target+" HTTP/1.1\r\n"...)
	request = append(request, HeadersBlock(hdrs)...)
	request = append(request, '\r', '\n')

	return append(request, body...)
}
