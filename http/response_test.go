package http

import (
	"errors"
	"testing"

	"github.com/indigo-web/lite/http/mime"
	"github.com/indigo-web/lite/http/status"
	"github.com/stretchr/testify/require"
)

func TestResponse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		fields := NewResponse().Reveal()
		require.Equal(t, status.OK, fields.Code)
		require.Equal(t, mime.HTML, fields.ContentType)
		require.Empty(t, fields.Body)
	})

	t.Run("builder", func(t *testing.T) {
		fields := NewResponse().
			Code(status.NotFound).
			ContentType(mime.Plain).
			String("hello").
			Reveal()
		require.Equal(t, status.NotFound, fields.Code)
		require.Equal(t, mime.Plain, fields.ContentType)
		require.Equal(t, "hello", string(fields.Body))
	})

	t.Run("JSON", func(t *testing.T) {
		resp, err := NewResponse().TryJSON([]int{1, 2, 3})
		require.NoError(t, err)
		require.Equal(t, "[1,2,3]", string(resp.Reveal().Body))
		require.Equal(t, mime.JSON, resp.Reveal().ContentType)
	})

	t.Run("JSON struct", func(t *testing.T) {
		type model struct {
			Name  string `json:"name"`
			Count int    `json:"count"`
		}

		fields := JSON(model{Name: "lite", Count: 2}).Reveal()
		require.Equal(t, `{"name":"lite","count":2}`, string(fields.Body))
		require.Equal(t, status.OK, fields.Code)
	})

	t.Run("not found", func(t *testing.T) {
		fields := NotFound().Reveal()
		require.Equal(t, status.NotFound, fields.Code)
		require.Equal(t, mime.HTML, fields.ContentType)
		require.Equal(t, NotFoundBody, string(fields.Body))
	})

	t.Run("error", func(t *testing.T) {
		fields := Error(errors.New("boom")).Reveal()
		require.Equal(t, status.InternalServerError, fields.Code)
		require.Equal(t, InternalServerErrorBody, string(fields.Body))

		fields = Error(status.NewError(403, "go away")).Reveal()
		require.Equal(t, status.Code(403), fields.Code)
		require.Equal(t, mime.Plain, fields.ContentType)
		require.Equal(t, "go away", string(fields.Body))
	})

	t.Run("nil error", func(t *testing.T) {
		fields := String("ok").Error(nil).Reveal()
		require.Equal(t, status.OK, fields.Code)
		require.Equal(t, "ok", string(fields.Body))
	})

	t.Run("json over string body", func(t *testing.T) {
		fields := String("placeholder-body").JSON([]int{1, 2}).Reveal()
		require.Equal(t, mime.JSON, fields.ContentType)
		require.Equal(t, "[1,2]", string(fields.Body))
	})

	t.Run("json over error page", func(t *testing.T) {
		fields := NotFound().JSON(map[string]string{"error": "missing"}).Reveal()
		require.Equal(t, status.NotFound, fields.Code)
		require.Equal(t, `{"error":"missing"}`, string(fields.Body))
		require.Equal(t, NotFoundBody, string(NotFound().Reveal().Body))
	})
}
