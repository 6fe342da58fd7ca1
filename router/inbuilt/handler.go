package inbuilt

import (
	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/http/form"
	"github.com/indigo-web/lite/kv"
)

type (
	// NoBody is a handler taking no input at all.
	NoBody func() *http.Response
	// WithForm is a handler receiving the decoded urlencoded body.
	WithForm func(form *kv.Storage) *http.Response
)

type Kind uint8

const (
	KindNoBody Kind = iota + 1
	KindWithForm
)

func (k Kind) String() string {
	switch k {
	case KindNoBody:
		return "NoBody"
	case KindWithForm:
		return "WithForm"
	default:
		return "Unknown"
	}
}

// Handler is exactly one of NoBody or WithForm.
type Handler struct {
	kind     Kind
	noBody   NoBody
	withForm WithForm
}

func newNoBody(fn NoBody) *Handler {
	return &Handler{kind: KindNoBody, noBody: fn}
}

func newWithForm(fn WithForm) *Handler {
	return &Handler{kind: KindWithForm, withForm: fn}
}

func (h *Handler) Kind() Kind {
	return h.kind
}

// Call invokes the handler. WithForm handlers get the request body decoded as a form,
// regardless of the Content-Type.
func (h *Handler) Call(request *http.Request) *http.Response {
	switch h.kind {
	case KindWithForm:
		return h.withForm(form.Decode(request.Body))
	default:
		return h.noBody()
	}
}
