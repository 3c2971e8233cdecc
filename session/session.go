// Package session implements the per-connection command loop (C8): it
// reads one line at a time from a client, tokenizes it, builds a
// single-step pipeline for whichever command matched, and writes the
// response back onto the same connection.
package session

import (
	"bufio"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/arborist-net/mstnet/graph"
	"github.com/arborist-net/mstnet/internal/logging"
	promcollectors "github.com/arborist-net/mstnet/internal/metrics"
	"github.com/arborist-net/mstnet/metrics"
	"github.com/arborist-net/mstnet/mst"
	"github.com/arborist-net/mstnet/pipeline"
)

const helpMenu = "" +
	"------------------------ COMMAND MENU --------------------------------------------\n" +
	"Create a new graph:\n" +
	"   - Syntax: 'create <number_of_vertices>'\n" +
	"   - Example: 'create 5' to create a graph with 5 vertices.\n" +
	"Add an edge:\n" +
	"   - Syntax: 'add <u> <v> <w>'\n" +
	"   - Example: 'add 1 2 10' to add an edge between vertices 1 and 2 with weight 10.\n" +
	"Remove an edge:\n" +
	"   - Syntax: 'remove <u> <v>'\n" +
	"   - Example: 'remove 1 2' to remove the edge between vertices 1 and 2.\n" +
	"Choose MST Algorithm:\n" +
	"   - Syntax: 'algo <algorithm_name>'\n" +
	"   - Available: prim, kruskal, boruvka, tarjan, integer_mst\n" +
	"Find a path between two vertices:\n" +
	"   - Syntax: 'path <u> <v>'\n" +
	"   - Reports the path between u and v in the most recently solved MST.\n" +
	"Display MST and Analysis:\n" +
	"   - Syntax: 'display'\n" +
	"   - Shows the Graph, MST of the Graph and an analysis summary.\n" +
	"Shutdown:\n" +
	"   - Syntax: 'shutdown'\n" +
	"   - Closes the connection with the server.\n" +
	"----------------------------------------------------------------------------------\n"

const (
	errGraphNotCreated = "Graph not created. Use 'create' first.\n"
	errUnknownCommand  = "Unknown command.\n"
)

var algorithmNames = map[string]mst.Algorithm{
	"prim":        mst.Prim,
	"kruskal":     mst.Kruskal,
	"boruvka":     mst.Boruvka,
	"tarjan":      mst.Tarjan,
	"integer_mst": mst.IntegerMST,
}

// Session owns one client connection's state: its graph, its chosen
// algorithm tag, and the most recently solved MST (kept so that `path`
// can be served without resolving on every call).
type Session struct {
	conn     net.Conn
	logger   *logging.Logger
	id       uuid.UUID
	g        *graph.Graph
	algoName string
	lastMST  *graph.Graph

	// Metrics is optional; when set, each dispatched command and MST
	// solve is recorded against it. nil disables instrumentation.
	Metrics *promcollectors.Collectors
}

// New wraps conn in a Session. logger may be nil, in which case a default
// component logger is used.
func New(conn net.Conn, logger *logging.Logger) *Session {
	if logger == nil {
		logger = logging.Default("session")
	}
	id := uuid.New()
	return &Session{
		conn:     conn,
		logger:   logger.With("session_id", id.String()),
		id:       id,
		algoName: "prim",
	}
}

// ID returns the session's per-connection identifier.
func (s *Session) ID() uuid.UUID { return s.id }

// Run sends the help menu, then services commands until the client
// disconnects, sends `shutdown`, or the connection errors out. It never
// closes conn itself; the caller (the accept loop's client registry) owns
// the socket's lifecycle.
func (s *Session) Run() {
	if _, err := s.conn.Write([]byte(helpMenu)); err != nil {
		s.logger.Warn("failed writing help menu", "err", err)
		return
	}

	reader := bufio.NewReader(s.conn)
	for {
		line, err := reader.ReadString('\n')
		if line == "" && err != nil {
			s.logger.Debug("client disconnected")
			return
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			if err != nil {
				return
			}
			continue
		}

		if !s.dispatch(fields) {
			return
		}
		if err != nil {
			return
		}
	}
}

// dispatch builds and executes a one-step pipeline for fields[0]. It
// returns false only for the shutdown command; a failed write is logged
// and the session ends when its next read fails.
func (s *Session) dispatch(fields []string) bool {
	if s.Metrics != nil {
		s.Metrics.IncCommand(fields[0])
	}

	p := pipeline.New()
	keepGoing := true

	switch fields[0] {
	case "create":
		p.AddStep(func() { s.handleCreate(fields) })
	case "add":
		p.AddStep(func() { s.handleAdd(fields) })
	case "remove":
		p.AddStep(func() { s.handleRemove(fields) })
	case "algo":
		p.AddStep(func() { s.handleAlgo(fields) })
	case "path":
		p.AddStep(func() { s.handlePath(fields) })
	case "display":
		p.AddStep(func() { s.handleDisplay() })
	case "shutdown":
		p.AddStep(func() { s.handleShutdown() })
		keepGoing = false
	default:
		p.AddStep(func() { s.write(errUnknownCommand) })
	}

	p.Execute()
	return keepGoing
}

func (s *Session) handleCreate(fields []string) {
	if len(fields) < 2 {
		s.write("Error: Missing argument. Syntax: create <number_of_vertices>\nExample: create 5\n")
		return
	}
	if len(fields) > 2 {
		s.write("Error: Too many arguments provided.\nSyntax: create <number_of_vertices>\nExample: create 5\n")
		return
	}
	n, err := strconv.Atoi(fields[1])
	if err != nil {
		s.write("Invalid input. Syntax: create <number_of_vertices>\nExample: create 5\n")
		return
	}
	if n < 0 {
		s.write("Error: Number of vertices must be >= 0.\nTry again: create <number_of_vertices>\n")
		return
	}
	s.g = graph.New(n)
	s.lastMST = nil
	s.write(fmt.Sprintf("Graph created with %d vertices.\n", n))
}

func (s *Session) handleAdd(fields []string) {
	if s.g == nil {
		s.write(errGraphNotCreated)
		return
	}
	u, v, w, ok := parseUVW(fields)
	if !ok {
		s.write("Invalid input. Syntax: 'add <u> <v> <w>'\n")
		return
	}
	s.g.AddEdge(u, v, w)
	s.lastMST = nil
	s.write(fmt.Sprintf("Edge added: (%d, %d) with weight %d\n", u, v, w))
}

func (s *Session) handleRemove(fields []string) {
	if s.g == nil {
		s.write(errGraphNotCreated)
		return
	}
	u, v, ok := parseUV(fields)
	if !ok {
		s.write("Invalid input. Syntax: 'remove <u> <v>'\n")
		return
	}
	s.g.RemoveEdge(u, v)
	s.lastMST = nil
	s.write(fmt.Sprintf("Edge removed: (%d, %d)\n", u, v))
}

func (s *Session) handleAlgo(fields []string) {
	if len(fields) < 2 {
		s.write("Invalid input. Syntax: 'algo <algorithm_name>'\n")
		return
	}
	name := strings.ToLower(fields[1])
	if _, ok := algorithmNames[name]; !ok {
		s.write(fmt.Sprintf("Error: Unknown algorithm '%s'. Available options: prim, kruskal, boruvka, tarjan, integer_mst.\n", fields[1]))
		return
	}
	s.algoName = name
	s.write(fmt.Sprintf("Algorithm set to %s.\n", name))
}

func (s *Session) handlePath(fields []string) {
	if s.g == nil {
		s.write(errGraphNotCreated)
		return
	}
	u, v, ok := parseUV(fields)
	if !ok {
		s.write("Invalid input. Syntax: 'path <u> <v>'\n")
		return
	}
	tree := s.lastMST
	if tree == nil {
		var err error
		tree, err = s.solve(algorithmNames[s.algoName])
		if err != nil {
			s.write("Unknown algorithm.\n")
			return
		}
		s.lastMST = tree
	}
	s.write(metrics.Path(tree, u, v) + "\n")
}

func (s *Session) handleDisplay() {
	if s.g == nil {
		s.write(errGraphNotCreated)
		return
	}

	algo, ok := algorithmNames[s.algoName]
	if !ok {
		s.write("Unknown algorithm.\n")
		return
	}
	tree, err := s.solve(algo)
	if err != nil {
		s.write("Unknown algorithm.\n")
		return
	}
	s.lastMST = tree

	var b strings.Builder
	b.WriteString(s.g.Display())
	b.WriteString(tree.Display())
	b.WriteString("------------------MST Analysis-------------------------\n")
	fmt.Fprintf(&b, "Algorithm: %s\n", s.algoName)
	fmt.Fprintf(&b, "Total MST weight: %d\n", metrics.TotalWeight(tree))
	fmt.Fprintf(&b, "Longest path: %s\n", metrics.DepthPath(tree))
	fmt.Fprintf(&b, "%s\n", metrics.HeaviestPath(tree))
	fmt.Fprintf(&b, "Average distance: %f\n", metrics.AverageDistance(tree))
	fmt.Fprintf(&b, "Heaviest edge: %s\n", metrics.HeaviestEdge(tree))
	fmt.Fprintf(&b, "Lightest edge: %s\n", metrics.LightestEdge(tree))
	b.WriteString("-------------------------------------------------------\n")

	s.write(b.String())
}

// solve runs mst.Solve for algo, recording its wall-clock duration against
// s.Metrics when set.
func (s *Session) solve(algo mst.Algorithm) (*graph.Graph, error) {
	start := time.Now()
	tree, err := mst.Solve(s.g, algo)
	if err == nil && s.Metrics != nil {
		s.Metrics.ObserveSolve(string(algo), time.Since(start))
	}
	return tree, err
}

func (s *Session) handleShutdown() {
	s.write("Shutting down client.\n")
	s.logger.Debug("client initiated shutdown")
}

func (s *Session) write(text string) {
	if _, err := s.conn.Write([]byte(text)); err != nil {
		s.logger.Warn("write failed", "err", err)
	}
}

func parseUV(fields []string) (u, v int, ok bool) {
	if len(fields) < 3 {
		return 0, 0, false
	}
	var err error
	if u, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, false
	}
	if v, err = strconv.Atoi(fields[2]); err != nil {
		return 0, 0, false
	}
	return u, v, true
}

func parseUVW(fields []string) (u, v int, w int32, ok bool) {
	if len(fields) < 4 {
		return 0, 0, 0, false
	}
	uu, vv, ok := parseUV(fields)
	if !ok {
		return 0, 0, 0, false
	}
	ww, err := strconv.Atoi(fields[3])
	if err != nil {
		return 0, 0, 0, false
	}
	return uu, vv, int32(ww), true
}
