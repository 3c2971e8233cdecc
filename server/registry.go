package server

import (
	"net"
	"sync"
)

// clientRegistry tracks every socket currently open, guarded by a
// dedicated mutex (spec's §5 "set of active client sockets ... guarded by
// a dedicated mutex"). Mutation points: add on accept, remove on session
// exit.
type clientRegistry struct {
	mu    sync.Mutex
	conns map[net.Conn]struct{}
}

func newClientRegistry() *clientRegistry {
	return &clientRegistry{conns: make(map[net.Conn]struct{})}
}

func (r *clientRegistry) add(c net.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.conns[c] = struct{}{}
}

func (r *clientRegistry) remove(c net.Conn) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.conns, c)
}

func (r *clientRegistry) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.conns)
}

// closeAll shuts down every tracked connection and clears the set.
func (r *clientRegistry) closeAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for c := range r.conns {
		c.Close()
	}
	r.conns = make(map[net.Conn]struct{})
}
