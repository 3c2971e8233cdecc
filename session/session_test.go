package session_test

import (
	"bufio"
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arborist-net/mstnet/session"
)

// newTestSession wires a net.Pipe connection to a Session, runs it in the
// background, and hands the test a writer for requests and a reader for
// responses.
func newTestSession(t *testing.T) (requests *bufio.Writer, responses *bufio.Reader, done <-chan struct{}) {
	t.Helper()
	clientConn, serverConn := net.Pipe()
	s := session.New(serverConn, nil)

	finished := make(chan struct{})
	go func() {
		s.Run()
		close(finished)
	}()
	t.Cleanup(func() { clientConn.Close() })

	return bufio.NewWriter(clientConn), bufio.NewReader(clientConn), finished
}

func sendLine(t *testing.T, w *bufio.Writer, line string) {
	t.Helper()
	_, err := w.WriteString(line + "\n")
	require.NoError(t, err)
	require.NoError(t, w.Flush())
}

// readLine reads and trims exactly one response line.
func readLine(t *testing.T, r *bufio.Reader) string {
	t.Helper()
	line, err := r.ReadString('\n')
	require.NoError(t, err)
	return strings.TrimRight(line, "\n")
}

// readUntil reads lines through and including the first one equal to
// marker, returning every line read. Used so tests don't have to hardcode
// a response block's exact line count.
func readUntil(t *testing.T, r *bufio.Reader, marker string) []string {
	t.Helper()
	var lines []string
	for {
		line := readLine(t, r)
		lines = append(lines, line)
		if line == marker {
			return lines
		}
	}
}

const helpMenuLastLine = "----------------------------------------------------------------------------------"
const analysisLastLine = "-------------------------------------------------------"

func drainHelpMenu(t *testing.T, r *bufio.Reader) {
	t.Helper()
	readUntil(t, r, helpMenuLastLine)
}

func TestHelpMenuSentOnConnect(t *testing.T) {
	_, responses, _ := newTestSession(t)
	lines := readUntil(t, responses, helpMenuLastLine)
	assert.Contains(t, lines[0], "COMMAND MENU")
	assert.Contains(t, strings.Join(lines, "\n"), "Syntax: 'create <number_of_vertices>'")
}

func TestCreateThenAddThenRemove(t *testing.T) {
	requests, responses, _ := newTestSession(t)
	drainHelpMenu(t, responses)

	sendLine(t, requests, "create 3")
	assert.Equal(t, "Graph created with 3 vertices.", readLine(t, responses))

	sendLine(t, requests, "add 0 1 5")
	assert.Equal(t, "Edge added: (0, 1) with weight 5", readLine(t, responses))

	sendLine(t, requests, "remove 0 1")
	assert.Equal(t, "Edge removed: (0, 1)", readLine(t, responses))
}

func TestAddBeforeCreateReportsPrecondition(t *testing.T) {
	requests, responses, _ := newTestSession(t)
	drainHelpMenu(t, responses)

	sendLine(t, requests, "add 0 1 5")
	assert.Equal(t, "Graph not created. Use 'create' first.", readLine(t, responses))
}

func TestAlgoCaseInsensitiveAndRejectsUnknown(t *testing.T) {
	requests, responses, _ := newTestSession(t)
	drainHelpMenu(t, responses)

	sendLine(t, requests, "algo KrUsKaL")
	assert.Equal(t, "Algorithm set to kruskal.", readLine(t, responses))

	sendLine(t, requests, "algo bogus")
	assert.Equal(t,
		"Error: Unknown algorithm 'bogus'. Available options: prim, kruskal, boruvka, tarjan, integer_mst.",
		readLine(t, responses))
}

func TestUnknownCommand(t *testing.T) {
	requests, responses, _ := newTestSession(t)
	drainHelpMenu(t, responses)

	sendLine(t, requests, "frobnicate")
	assert.Equal(t, "Unknown command.", readLine(t, responses))
}

func TestDisplayComposesGraphMSTAndAnalysis(t *testing.T) {
	requests, responses, _ := newTestSession(t)
	drainHelpMenu(t, responses)

	sendLine(t, requests, "create 3")
	readLine(t, responses)
	sendLine(t, requests, "add 0 1 1")
	readLine(t, responses)
	sendLine(t, requests, "add 1 2 1")
	readLine(t, responses)

	sendLine(t, requests, "display")
	lines := readUntil(t, responses, analysisLastLine)
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "Graph Representation")
	assert.Contains(t, joined, "MST Analysis")
	assert.Contains(t, joined, "Algorithm: prim")
	assert.Contains(t, joined, "Total MST weight: 2")
	assert.Contains(t, joined, "Longest path: 0->1->2")
}

func TestPathUsesMostRecentlySolvedMST(t *testing.T) {
	requests, responses, _ := newTestSession(t)
	drainHelpMenu(t, responses)

	sendLine(t, requests, "create 3")
	readLine(t, responses)
	sendLine(t, requests, "add 0 1 1")
	readLine(t, responses)
	sendLine(t, requests, "add 1 2 1")
	readLine(t, responses)

	sendLine(t, requests, "path 0 2")
	assert.Equal(t, "0->1->2", readLine(t, responses))
}

func TestShutdownClosesSessionLoop(t *testing.T) {
	requests, responses, done := newTestSession(t)
	drainHelpMenu(t, responses)

	sendLine(t, requests, "shutdown")
	assert.Equal(t, "Shutting down client.", readLine(t, responses))
	<-done
}
