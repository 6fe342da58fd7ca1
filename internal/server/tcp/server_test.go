package tcp

import (
	"io"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"github.com/indigo-web/lite/http/status"
	"github.com/stretchr/testify/require"
)

func listen(t *testing.T) net.Listener {
	listener, err := net.Listen("tcp", "localhost:0")
	require.NoError(t, err)

	return listener
}

func TestTCP(t *testing.T) {
	t.Run("stop", func(t *testing.T) {
		server := NewServer(listen(t), 4, func(conn net.Conn) {
			_ = conn.Close()
		})
		stopCh := make(chan error)
		go func() {
			stopCh <- server.Start()
		}()

		require.NoError(t, server.Stop())
		require.ErrorIs(t, <-stopCh, status.ErrShutdown)
		require.NoError(t, server.Stop())
	})

	t.Run("serve", func(t *testing.T) {
		server := NewServer(listen(t), 4, func(conn net.Conn) {
			defer conn.Close()
			_, _ = conn.Write([]byte("hello"))
		})
		go func() {
			_ = server.Start()
		}()
		defer server.Stop()

		for i := 0; i < 10; i++ {
			conn, err := net.Dial("tcp", server.Addr().String())
			require.NoError(t, err)
			data, err := io.ReadAll(conn)
			require.NoError(t, err)
			require.Equal(t, "hello", string(data))
			require.NoError(t, conn.Close())
		}
	})

	t.Run("max conns", func(t *testing.T) {
		var active, peak atomic.Int64
		release := make(chan struct{})
		server := NewServer(listen(t), 2, func(conn net.Conn) {
			defer conn.Close()
			n := active.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}

			<-release
			active.Add(-1)
		})
		go func() {
			_ = server.Start()
		}()
		defer server.Stop()

		var conns []net.Conn
		for i := 0; i < 5; i++ {
			conn, err := net.Dial("tcp", server.Addr().String())
			require.NoError(t, err)
			conns = append(conns, conn)
		}

		require.Eventually(t, func() bool {
			return active.Load() == 2
		}, time.Second, 5*time.Millisecond)
		time.Sleep(50 * time.Millisecond)
		require.Equal(t, int64(2), active.Load())

		close(release)
		for _, conn := range conns {
			_, _ = io.ReadAll(conn)
			_ = conn.Close()
		}

		require.Equal(t, int64(2), peak.Load())
	})

	t.Run("in-flight connections outlive stop", func(t *testing.T) {
		accepted, proceed := make(chan struct{}), make(chan struct{})
		server := NewServer(listen(t), 4, func(conn net.Conn) {
			defer conn.Close()
			close(accepted)
			<-proceed
			_, _ = conn.Write([]byte("late"))
		})
		stopCh := make(chan error)
		go func() {
			stopCh <- server.Start()
		}()

		conn, err := net.Dial("tcp", server.Addr().String())
		require.NoError(t, err)
		defer conn.Close()
		<-accepted

		require.NoError(t, server.Stop())
		require.ErrorIs(t, <-stopCh, status.ErrShutdown)

		close(proceed)
		data, err := io.ReadAll(conn)
		require.NoError(t, err)
		require.Equal(t, "late", string(data))
	})
}
