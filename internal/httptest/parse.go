// Package httptest parses raw responses in tests.
package httptest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/indigo-web/lite/kv"
)

type Response struct {
	Proto   string
	Code    int
	Status  string
	Headers *kv.Storage
	Body    string
}

// Parse parses the response as it was sent by the server. As every response must carry
// the Content-Length, its absence or mismatch with the actual body length is an error.
func Parse(raw string) (response Response, err error) {
	var found bool
	response.Headers = kv.New()

	response.Proto, raw, found = strings.Cut(raw, " ")
	if !found || len(raw) == 0 {
		return response, fmt.Errorf("bad status line: lacking code and status")
	}

	var code string
	code, raw, found = strings.Cut(raw, " ")
	response.Code, err = strconv.Atoi(code)
	if err != nil {
		return response, err
	}

	if !found || len(raw) == 0 {
		return response, fmt.Errorf("bad status line: lacking status")
	}

	response.Status, raw, found = strings.Cut(raw, "\r\n")
	if !found {
		return response, fmt.Errorf("bad response: only status line is presented")
	}

	for {
		var headerLine string
		headerLine, raw, found = strings.Cut(raw, "\r\n")
		if !found {
			return response, fmt.Errorf("bad header line %q: no breaking CRLF", headerLine)
		}

		if len(headerLine) == 0 {
			break
		}

		key, value, found := strings.Cut(headerLine, ": ")
		if !found {
			return response, fmt.Errorf("bad header %q: no value", headerLine)
		}

		response.Headers.Add(key, value)
	}

	contentLength, found := response.Headers.Get("Content-Length")
	if !found {
		return response, fmt.Errorf("no Content-Length")
	}

	length, err := strconv.Atoi(contentLength)
	if err != nil {
		return response, fmt.Errorf("bad Content-Length: %w", err)
	}

	if length != len(raw) {
		return response, fmt.Errorf("Content-Length is %d, but the body is %d bytes", length, len(raw))
	}

	response.Body = raw

	return response, nil
}
