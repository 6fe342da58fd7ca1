package main

import (
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/indigo-web/lite"
	"github.com/indigo-web/lite/config"
	"github.com/indigo-web/lite/http/mime"
	"github.com/indigo-web/lite/http/status"
	"github.com/indigo-web/lite/internal/parser"
	json "github.com/json-iterator/go"
	"github.com/stretchr/testify/require"
)

func siteConfig() *config.Config {
	cfg := config.Default()
	cfg.Static.Root = filepath.Join("..", "..", "examples", "site", "public")
	cfg.Templates.Root = filepath.Join("..", "..", "examples", "site", "templates")

	return cfg
}

func TestSite(t *testing.T) {
	cfg := siteConfig()
	r := newRouter(cfg, lite.New("localhost:0"))
	require.NoError(t, r.OnStart())

	request := func(t *testing.T, raw string) (status.Code, mime.MIME, string) {
		req, err := parser.Parse([]byte(raw))
		require.NoError(t, err)
		fields := r.OnRequest(req).Reveal()
		return fields.Code, fields.ContentType, string(fields.Body)
	}

	t.Run("index", func(t *testing.T) {
		code, contentType, body := request(t, "GET / HTTP/1.1\r\n\r\n")
		require.Equal(t, status.OK, code)
		require.Equal(t, mime.HTML, contentType)
		require.Contains(t, body, "Hello from lite!")
	})

	t.Run("contact form", func(t *testing.T) {
		code, _, body := request(t, "GET /contact HTTP/1.1\r\n\r\n")
		require.Equal(t, status.OK, code)
		require.Contains(t, body, `<form method="post" action="/contact">`)
	})

	t.Run("contact submit", func(t *testing.T) {
		code, _, body := request(t, "POST /contact HTTP/1.1\r\n\r\nname=Ada&message=Hello+there")
		require.Equal(t, status.OK, code)
		require.Contains(t, body, "<h1>Thanks, Ada!</h1>")
		require.Contains(t, body, "<blockquote>Hello there</blockquote>")
		require.NotContains(t, body, "{{")
	})

	t.Run("anonymous submit", func(t *testing.T) {
		_, _, body := request(t, "POST /contact HTTP/1.1\r\n\r\n")
		require.Contains(t, body, "<h1>Thanks, anonymous!</h1>")
	})

	t.Run("stylesheet", func(t *testing.T) {
		code, contentType, _ := request(t, "GET /static/css/style.css HTTP/1.1\r\n\r\n")
		require.Equal(t, status.OK, code)
		require.Equal(t, mime.CSS, contentType)
	})

	t.Run("stats", func(t *testing.T) {
		code, contentType, body := request(t, "GET /stats HTTP/1.1\r\n\r\n")
		require.Equal(t, status.OK, code)
		require.Equal(t, mime.JSON, contentType)

		var stats map[string]any
		require.NoError(t, json.Unmarshal([]byte(body), &stats))
		require.Contains(t, stats, "requests_total")
	})

	t.Run("frozen", func(t *testing.T) {
		require.Panics(t, func() {
			r.Get("/late", nil)
		})
		require.Equal(t, 4, r.Routes())
	})
}

func TestFetch(t *testing.T) {
	cfg := siteConfig()
	started, stopped := make(chan struct{}), make(chan error)
	app := lite.New("localhost:0").
		Tune(cfg).
		Logger(slog.New(slog.NewTextHandler(io.Discard, nil))).
		NotifyOnStart(func() {
			close(started)
		})

	go func() {
		stopped <- app.Serve(newRouter(cfg, app))
	}()
	<-started
	defer func() {
		app.Stop()
		require.NoError(t, <-stopped)
	}()

	response, err := fetch(app.Addr().String() + "/contact")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(response), "HTTP/1.1 200 OK\r\n"))
	require.Contains(t, string(response), "Contact us")

	response, err = fetch("http://" + app.Addr().String() + "/nope")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(response), "HTTP/1.1 404 Not Found\r\n"))

	_, err = fetch("https://" + app.Addr().String())
	require.Error(t, err)
}
