// Package parser turns the raw bytes of a single read into a request.
package parser

import (
	"bytes"
	"strings"

	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/http/form"
	"github.com/indigo-web/lite/http/status"
	"github.com/indigo-web/lite/kv"
	"github.com/indigo-web/utils/uf"
)

// Parse parses the request line, headers and body out of data. Lines may be terminated
// by CRLF, LF or a lone CR. The request line must consist of exactly three whitespace-separated
// tokens, the second of which starts with a slash, otherwise status.ErrParseFailure is
// returned.
//
// Header lines lacking a colon are skipped. The body is everything after the first empty
// line; it aliases data and is never checked against the Content-Length.
func Parse(data []byte) (*http.Request, error) {
	line, rest := nextLine(data)
	method, target, ok := requestLine(line)
	if !ok {
		return nil, status.ErrParseFailure
	}

	request := http.NewRequest()
	request.Method = method
	request.Path, request.Query = splitTarget(target)

	for len(rest) > 0 {
		line, rest = nextLine(rest)
		if len(line) == 0 {
			request.Body = rest
			break
		}

		colon := bytes.IndexByte(line, ':')
		if colon == -1 {
			continue
		}

		key := string(bytes.TrimSpace(line[:colon]))
		value := string(bytes.TrimSpace(line[colon+1:]))
		request.Headers.Set(key, value)
	}

	return request, nil
}

func requestLine(line []byte) (method, target string, ok bool) {
	tokens := strings.Fields(string(line))
	if len(tokens) != 3 || !strings.HasPrefix(tokens[1], "/") {
		return "", "", false
	}

	return tokens[0], tokens[1], true
}

func splitTarget(target string) (path string, query *kv.Storage) {
	path, rawQuery, found := strings.Cut(target, "?")
	if !found {
		return path, kv.New()
	}

	return path, form.Decode(uf.S2B(rawQuery))
}

// nextLine cuts the first line off. The line terminator is consumed, but isn't included
// into the line.
func nextLine(data []byte) (line, rest []byte) {
	for i, c := range data {
		switch c {
		case '\n':
			return data[:i], data[i+1:]
		case '\r':
			if i+1 < len(data) && data[i+1] == '\n' {
				return data[:i], data[i+2:]
			}

			return data[:i], data[i+1:]
		}
	}

	return data, nil
}
