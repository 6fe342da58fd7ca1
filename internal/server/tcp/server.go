package tcp

import (
	"net"
	"sync"

	"github.com/indigo-web/lite/http/status"
)

type OnConn func(net.Conn)

// Server accepts connections and serves each in its own goroutine. At most maxConns
// connections are served at once; when all the slots are taken, Accept isn't called
// until one frees.
type Server struct {
	sock   net.Listener
	onConn OnConn
	slots  chan struct{}
	done   chan struct{}
	once   sync.Once
}

func NewServer(sock net.Listener, maxConns int, onConn OnConn) *Server {
	return &Server{
		sock:   sock,
		onConn: onConn,
		slots:  make(chan struct{}, max(maxConns, 1)),
		done:   make(chan struct{}),
	}
}

// Start runs the accept loop on the calling goroutine. It returns status.ErrShutdown
// once the server is stopped, or the error Accept failed with.
func (s *Server) Start() error {
	for {
		select {
		case s.slots <- struct{}{}:
		case <-s.done:
			return status.ErrShutdown
		}

		conn, err := s.sock.Accept()
		if err != nil {
			<-s.slots

			select {
			case <-s.done:
				return status.ErrShutdown
			default:
				return err
			}
		}

		go s.serve(conn)
	}
}

func (s *Server) serve(conn net.Conn) {
	defer func() {
		<-s.slots
	}()

	s.onConn(conn)
}

// Stop closes the listener. Connections being served at the moment are left to finish
// on their own and aren't waited for. Calling Stop more than once is a no-op.
func (s *Server) Stop() (err error) {
	s.once.Do(func() {
		close(s.done)
		err = s.sock.Close()
	})

	return err
}

// Addr returns the address the server listens at.
func (s *Server) Addr() net.Addr {
	return s.sock.Addr()
}
