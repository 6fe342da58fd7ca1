package config

import (
	"time"
)

type (
	NET struct {
		// ReadBufferSize is the size of the buffer the request is read into. The request
		// is read by a single call, so everything exceeding the buffer is silently lost.
		ReadBufferSize int
		// MaxConns limits the number of connections being served simultaneously. The
		// accept loop blocks until a slot becomes free.
		MaxConns int
		// ReadTimeout limits how long the request may be awaited. Zero means no deadline.
		ReadTimeout time.Duration `test:"nullable"`
		// WriteTimeout limits how long writing the response may take. Zero means no deadline.
		WriteTimeout time.Duration `test:"nullable"`
	}

	Static struct {
		// Prefix is the path prefix of GET requests served from the static directory. Must
		// both start and end with a slash.
		Prefix string
		// Root is the directory static files are served from.
		Root string
	}

	Templates struct {
		// Root is the directory templates are fetched from.
		Root string
	}
)

// Config holds settings used across various parts of lite.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, because most likely this will result in ambiguous errors.
type Config struct {
	NET       NET
	Static    Static
	Templates Templates
}

// Default returns default config.
func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize: 1024,
			MaxConns:       256,
		},
		Static: Static{
			Prefix: "/static/",
			Root:   "public",
		},
		Templates: Templates{
			Root: "templates",
		},
	}
}
