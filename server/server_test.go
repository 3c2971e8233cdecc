package server

import (
	"bufio"
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborist-net/mstnet/internal/config"
)

func testConfig(mode config.Mode) config.Config {
	cfg := config.Default()
	cfg.Mode = mode
	cfg.Port = 0 // ephemeral
	cfg.Threads = 2
	cfg.QueueCapacity = 8
	return cfg
}

func startTestServer(t *testing.T, cfg config.Config) (*Server, func()) {
	t.Helper()
	s := New(cfg, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- s.Run(ctx) }()

	select {
	case <-s.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("server never became ready")
	}

	return s, func() {
		s.Shutdown()
		cancel()
		select {
		case <-errCh:
		case <-time.After(2 * time.Second):
			t.Fatal("server did not stop")
		}
	}
}

func TestAcceptLoopServesASession(t *testing.T) {
	s, stop := startTestServer(t, testConfig(config.ModeLeaderFollowers))
	defer stop()

	conn, err := net.Dial("tcp", s.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	reader := bufio.NewReader(conn)
	first, err := reader.ReadString('\n')
	require.NoError(t, err)
	assert.Contains(t, first, "COMMAND MENU")
}

func TestShutdownClosesListenerAndTrackedConnections(t *testing.T) {
	s, stop := startTestServer(t, testConfig(config.ModeActiveObject))

	conn, err := net.Dial("tcp", s.Addr().String())
	require.NoError(t, err)
	defer conn.Close()

	reader := bufio.NewReader(conn)
	_, err = reader.ReadString('\n') // help menu's first line
	require.NoError(t, err)

	stop()

	// The connection should now observe EOF/closed, since Shutdown sweeps
	// every tracked client socket.
	buf := make([]byte, 1)
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, err = conn.Read(buf)
	assert.Error(t, err)
}

func TestStdinShutdownLineStopsTheServer(t *testing.T) {
	cfg := testConfig(config.ModeLeaderFollowers)
	s := New(cfg, nil, nil)

	original := stdin
	r, w := io.Pipe()
	stdin = r
	defer func() { stdin = original }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	errCh := make(chan error, 1)
	go func() { errCh <- s.Run(ctx) }()

	select {
	case <-s.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("server never became ready")
	}

	_, err := w.Write([]byte("shutdown\n"))
	require.NoError(t, err)

	select {
	case err := <-errCh:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop after stdin shutdown line")
	}
}
