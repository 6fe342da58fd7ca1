package lite

import (
	"errors"
	"fmt"
	"log/slog"
	"net"
	"sync"

	"github.com/indigo-web/lite/config"
	"github.com/indigo-web/lite/http/status"
	"github.com/indigo-web/lite/internal/address"
	"github.com/indigo-web/lite/internal/server/http"
	"github.com/indigo-web/lite/internal/server/tcp"
	"github.com/indigo-web/lite/metrics"
	"github.com/indigo-web/lite/router"
	"github.com/indigo-web/lite/router/inbuilt"
)

// App binds a router to the address. Every accepted connection carries exactly one
// request and is closed right after the response is written.
type App struct {
	addr    address.Address
	cfg     *config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	hooks   hooks

	mu      sync.Mutex
	server  *tcp.Server
	stopped bool
}

// New returns a new App instance. Panics if the address is malformed.
func New(addr string) *App {
	appAddr, err := address.Parse(addr)
	if err != nil {
		panic(fmt.Errorf("lite: listen: bad addr: %v", err))
	}

	return &App{
		addr:    appAddr,
		cfg:     config.Default(),
		logger:  slog.Default(),
		metrics: metrics.New(),
	}
}

// Tune replaces default config.
func (a *App) Tune(cfg *config.Config) *App {
	a.cfg = cfg
	return a
}

// Logger sets the logger used for connections and lifecycle events.
func (a *App) Logger(logger *slog.Logger) *App {
	a.logger = logger
	return a
}

// NotifyOnStart calls the callback at the moment, when the listener is bound. Connections
// are accepted right after it returns.
func (a *App) NotifyOnStart(cb func()) *App {
	a.hooks.OnStart = cb
	return a
}

// NotifyOnStop calls the callback at the moment, when the listener is closed. Connections
// being served at the moment might still be alive.
func (a *App) NotifyOnStop(cb func()) *App {
	a.hooks.OnStop = cb
	return a
}

// Serve starts the web-application and blocks until Stop is called or accepting fails.
// If nil is passed instead of a router, empty inbuilt will be used. Returns nil after
// being stopped.
func (a *App) Serve(r router.Router) error {
	if r == nil {
		r = inbuilt.New()
	}

	if err := r.OnStart(); err != nil {
		return err
	}

	sock, err := net.Listen("tcp", a.addr.String())
	if err != nil {
		return fmt.Errorf("lite: listen: %w", err)
	}

	httpServer := http.NewServer(a.cfg, r, a.logger, a.metrics)
	server := tcp.NewServer(sock, a.cfg.NET.MaxConns, httpServer.Serve)

	a.mu.Lock()
	if a.stopped {
		a.mu.Unlock()
		return sock.Close()
	}
	a.server = server
	a.mu.Unlock()

	a.logger.Info("listening", "addr", sock.Addr().String(), "max_conns", a.cfg.NET.MaxConns)
	callIfNotNil(a.hooks.OnStart)

	err = server.Start()
	callIfNotNil(a.hooks.OnStop)

	if errors.Is(err, status.ErrShutdown) {
		a.logger.Info("stopped")
		return nil
	}

	a.logger.Error("accepting connections", "err", err)
	return err
}

// Stop closes the listener, so Serve returns. In-flight connections aren't interrupted
// and aren't waited for.
//
// NOTE: the call isn't blocking. So by that, after the method returned, some connections
// might still be served
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopped = true
	if a.server != nil {
		if err := a.server.Stop(); err != nil {
			a.logger.Debug("closing listener", "err", err)
		}
	}
}

// Addr returns the address the app listens at. Nil unless serving.
func (a *App) Addr() net.Addr {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server == nil {
		return nil
	}

	return a.server.Addr()
}

// Stats returns current connection and response counters.
func (a *App) Stats() metrics.Snapshot {
	return a.metrics.Snapshot()
}

type hooks struct {
	OnStart, OnStop func()
}

func callIfNotNil(f func()) {
	if f != nil {
		f()
	}
}
