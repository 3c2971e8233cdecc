// Package server implements the accept loop (C9): a listening socket, a
// dispatch pool that runs one session per accepted connection, a tracked
// client-socket registry for the shutdown sweep, and a stdin watcher that
// triggers shutdown on the literal line "shutdown".
package server

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/arborist-net/mstnet/internal/config"
	"github.com/arborist-net/mstnet/internal/logging"
	promcollectors "github.com/arborist-net/mstnet/internal/metrics"
	"github.com/arborist-net/mstnet/pool"
	"github.com/arborist-net/mstnet/session"
)

// stdin is the source stdinWatcher reads "shutdown" from; overridden by
// tests so they don't have to touch the process's real standard input.
var stdin io.Reader = os.Stdin

// Server owns the listening socket, the dispatch pool, and the set of
// open client connections. It is created once per process and run until
// shutdown.
type Server struct {
	cfg      config.Config
	logger   *logging.Logger
	metrics  *promcollectors.Collectors
	pool     pooler
	registry *clientRegistry
	running  atomic.Bool

	listener net.Listener
	ready    chan struct{}
}

// New builds a Server from cfg. metrics may be nil to disable
// instrumentation.
func New(cfg config.Config, logger *logging.Logger, metrics *promcollectors.Collectors) *Server {
	if logger == nil {
		logger = logging.Default("server")
	}

	var p pooler
	switch cfg.Mode {
	case config.ModeActiveObject:
		p = activeObjectPool{pool.NewActiveObject(cfg.Threads, cfg.QueueCapacity)}
	default:
		p = leaderFollowersPool{pool.NewLeaderFollowers(cfg.Threads, logger.With("component", "leaderfollowers"))}
	}

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		metrics:  metrics,
		pool:     p,
		registry: newClientRegistry(),
		ready:    make(chan struct{}),
	}
	s.running.Store(true)
	return s
}

// Run binds the listening socket and blocks until ctx is canceled or
// Shutdown is called (directly, or via the stdin watcher). It always
// returns nil on a clean shutdown.
func (s *Server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("server: listen on port %d: %w", s.cfg.Port, err)
	}
	s.listener = listener
	close(s.ready)
	s.logger.Info("listening", "port", s.cfg.Port, "mode", s.cfg.Mode)

	group, gctx := errgroup.WithContext(ctx)
	group.Go(func() error { return s.acceptLoop() })
	group.Go(func() error { return s.stdinWatcher(gctx) })

	err = group.Wait()
	if err != nil && !s.running.Load() {
		// Shutdown triggered the listener close that unblocked Accept;
		// that's the expected path out, not a real failure.
		return nil
	}
	return err
}

// acceptLoop accepts connections until the listener is closed and submits
// one session-handling task per connection to the dispatch pool.
func (s *Server) acceptLoop() error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if !s.running.Load() {
				return nil
			}
			return fmt.Errorf("server: accept: %w", err)
		}

		s.logger.Debug("accepted connection", "remote", conn.RemoteAddr())
		s.registry.add(conn)

		sess := session.New(conn, s.logger)
		sess.Metrics = s.metrics
		if s.metrics != nil {
			s.metrics.ActiveSessions.Inc()
			s.metrics.QueueDepth.Set(float64(s.pool.queueLen()))
		}

		accepted := s.pool.submit(func() {
			defer func() {
				s.registry.remove(conn)
				conn.Close()
				if s.metrics != nil {
					s.metrics.ActiveSessions.Dec()
				}
			}()
			sess.Run()
		})
		if !accepted {
			s.logger.Warn("pool rejected session, closing connection")
			s.registry.remove(conn)
			conn.Close()
			if s.metrics != nil {
				s.metrics.ActiveSessions.Dec()
			}
		}
	}
}

// stdinWatcher polls the server's standard input for the literal line
// "shutdown" and triggers Shutdown when it sees one. It exits when ctx is
// canceled or stdin closes.
func (s *Server) stdinWatcher(ctx context.Context) error {
	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		if scanner.Text() == "shutdown" {
			s.logger.Info("shutdown requested via stdin")
			s.Shutdown()
			return nil
		}
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return fmt.Errorf("server: stdin watcher: %w", err)
	}
	return nil
}

// Ready is closed once the listener has bound and Run's loops are about to
// start. Tests that bind to port 0 wait on this before calling Addr.
func (s *Server) Ready() <-chan struct{} { return s.ready }

// Addr returns the listener's bound address. It is only valid after Run
// has started and the listener has bound; primarily useful in tests that
// bind to port 0 and need to discover the actual port chosen.
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

// Shutdown flips the running flag, closes the listening socket (unblocking
// Accept), closes every tracked client connection (so sessions blocked in a
// read return), and then shuts down the dispatch pool.
func (s *Server) Shutdown() {
	if !s.running.CompareAndSwap(true, false) {
		return
	}
	if s.listener != nil {
		s.listener.Close()
	}
	s.registry.closeAll()
	s.pool.shutdown()
}
