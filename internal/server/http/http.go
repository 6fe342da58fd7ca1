package http

import (
	"errors"
	"io"
	"log/slog"
	"net"
	"runtime/debug"
	"sync"
	"time"

	"github.com/dchest/uniuri"
	"github.com/indigo-web/lite/config"
	"github.com/indigo-web/lite/http"
	"github.com/indigo-web/lite/http/status"
	"github.com/indigo-web/lite/internal/parser"
	"github.com/indigo-web/lite/internal/render"
	"github.com/indigo-web/lite/metrics"
	"github.com/indigo-web/lite/router"
	"github.com/indigo-web/utils/pool"
)

const (
	connIDLength   = 8
	headBufferSize = 128
)

// Server serves exactly one request per connection: the request is read by a single
// call, parsed, routed, the response is written and the connection is closed.
type Server struct {
	cfg     *config.Config
	router  router.Router
	logger  *slog.Logger
	metrics *metrics.Metrics
	// pools aren't safe for concurrent use on their own
	mu      sync.Mutex
	buffers *pool.ObjectPool[*[]byte]
	engines *pool.ObjectPool[*render.Engine]
}

func NewServer(cfg *config.Config, r router.Router, logger *slog.Logger, m *metrics.Metrics) *Server {
	return &Server{
		cfg:     cfg,
		router:  r,
		logger:  logger,
		metrics: m,
		buffers: pool.NewObjectPool[*[]byte](cfg.NET.MaxConns),
		engines: pool.NewObjectPool[*render.Engine](cfg.NET.MaxConns),
	}
}

// Serve owns the connection until it's closed. The connection is closed on every path,
// including panics.
func (s *Server) Serve(conn net.Conn) {
	start := time.Now()
	log := s.logger.With(
		slog.String("conn", uniuri.NewLen(connIDLength)),
		slog.String("remote", remote(conn)),
	)
	s.metrics.ConnOpened()

	defer func() {
		if r := recover(); r != nil {
			log.Error("connection handler panicked", "panic", r, "stack", string(debug.Stack()))
		}

		if err := conn.Close(); err != nil {
			log.Debug("closing connection", "err", err)
		}

		s.metrics.ConnClosed()
	}()

	buff := s.acquireBuffer()
	defer s.releaseBuffer(buff)

	// nothing read is still a request, just a malformed one
	data, err := s.read(conn, *buff)
	if err != nil && !errors.Is(err, io.EOF) {
		log.Debug("reading request", "err", err)
	}

	request, err := parser.Parse(data)
	if err != nil {
		s.metrics.ParseFailed()
		response := s.onError(nil, err)
		s.respond(conn, log, response, start)
		log.Info("malformed request", "err", err, "status", response.Reveal().Code)
		return
	}

	request.Remote = conn.RemoteAddr()
	response := s.onRequest(log, request)
	s.respond(conn, log, response, start)
	log.Info(
		"request",
		slog.String("method", request.Method),
		slog.String("path", request.Path),
		slog.Int("status", int(response.Reveal().Code)),
		slog.Duration("duration", time.Since(start)),
	)
}

// read does exactly one read. Whatever didn't fit into the buffer is lost.
func (s *Server) read(conn net.Conn, buff []byte) ([]byte, error) {
	if timeout := s.cfg.NET.ReadTimeout; timeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(timeout)); err != nil {
			return nil, err
		}
	}

	n, err := conn.Read(buff)
	if n == 0 {
		if err == nil {
			err = io.EOF
		}

		return nil, err
	}

	return buff[:n], nil
}

func (s *Server) respond(conn net.Conn, log *slog.Logger, response *http.Response, start time.Time) {
	if timeout := s.cfg.NET.WriteTimeout; timeout > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(timeout))
	}

	engine := s.acquireEngine()
	defer s.releaseEngine(engine)

	if err := engine.Write(response, conn); err != nil {
		log.Debug("writing response", "err", err)
	}

	s.metrics.Responded(response.Reveal().Code, time.Since(start))
}

func (s *Server) acquireBuffer() *[]byte {
	s.mu.Lock()
	buff := s.buffers.Acquire()
	s.mu.Unlock()

	if buff == nil {
		b := make([]byte, s.cfg.NET.ReadBufferSize)
		buff = &b
	}

	return buff
}

func (s *Server) releaseBuffer(buff *[]byte) {
	s.mu.Lock()
	s.buffers.Release(buff)
	s.mu.Unlock()
}

func (s *Server) acquireEngine() *render.Engine {
	s.mu.Lock()
	engine := s.engines.Acquire()
	s.mu.Unlock()

	if engine == nil {
		engine = render.NewEngine(make([]byte, 0, headBufferSize))
	}

	return engine
}

func (s *Server) releaseEngine(engine *render.Engine) {
	s.mu.Lock()
	s.engines.Release(engine)
	s.mu.Unlock()
}

func (s *Server) onRequest(log *slog.Logger, request *http.Request) (response *http.Response) {
	defer func() {
		if r := recover(); r != nil {
			s.metrics.Panicked()
			log.Error(
				"handler panicked",
				"panic", r,
				"method", request.Method,
				"path", request.Path,
				"stack", string(debug.Stack()),
			)
			response = s.onError(request, status.ErrInternalServerError)
		}
	}()

	return notNil(s.router.OnRequest(request))
}

func (s *Server) onError(request *http.Request, err error) *http.Response {
	return notNil(s.router.OnError(request, err))
}

func notNil(response *http.Response) *http.Response {
	if response != nil {
		return response
	}

	return http.NewResponse()
}

func remote(conn net.Conn) string {
	if addr := conn.RemoteAddr(); addr != nil {
		return addr.String()
	}

	return "unknown"
}
