// Package tmpl implements literal {{key}} substitution templates.
package tmpl

import (
	"bytes"

	"github.com/indigo-web/lite/content"
	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/http/mime"
	"github.com/indigo-web/lite/kv"
	"github.com/indigo-web/utils/uf"
)

// Render replaces every {{key}} occurrence with the corresponding value. Keys are processed
// one after another in insertion order, each being a separate pass over the result of the
// previous one. Values aren't escaped in any way. Placeholders missing from the context
// are left as they are. The template itself is never modified, nil context is the same
// as an empty one.
func Render(template []byte, ctx *kv.Storage) []byte {
	if ctx == nil || ctx.Empty() {
		return bytes.Clone(template)
	}

	rendered := template
	var placeholder []byte

	for key, value := range ctx.Pairs() {
		placeholder = append(append(append(placeholder[:0], "{{"...), key...), "}}"...)
		rendered = bytes.ReplaceAll(rendered, placeholder, uf.S2B(value))
	}

	return rendered
}

// Engine renders templates fetched from the provider. Templates are fetched on every
// call, nothing is cached.
type Engine struct {
	Provider content.Provider
}

func New(provider content.Provider) Engine {
	return Engine{Provider: provider}
}

// Render fetches the template and renders it.
func (e Engine) Render(name string, ctx *kv.Storage) ([]byte, error) {
	template, err := e.Provider.Fetch(name)
	if err != nil {
		return nil, err
	}

	return Render(template, ctx), nil
}

// Respond renders the template into a text/html response. Missing template results in 404.
func (e Engine) Respond(name string, ctx *kv.Storage) *http.Response {
	rendered, err := e.Render(name, ctx)
	if err != nil {
		return http.Error(err)
	}

	return http.NewResponse().
		ContentType(mime.HTML).
		Bytes(rendered)
}
