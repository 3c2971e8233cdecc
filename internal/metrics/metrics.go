// Package metrics exposes the server's prometheus collectors: pool queue
// depth, active sessions, commands processed, and per-algorithm MST solve
// duration. They are served over a debug HTTP listener kept separate from
// the MST TCP port.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collectors groups every metric the server records.
type Collectors struct {
	QueueDepth        prometheus.Gauge
	ActiveSessions    prometheus.Gauge
	CommandsProcessed *prometheus.CounterVec
	SolveDuration     *prometheus.HistogramVec
}

// New registers and returns the server's collectors against the default
// registry.
func New() *Collectors {
	return &Collectors{
		QueueDepth: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "mstnet_pool_queue_depth",
			Help: "Number of tasks currently queued in the dispatch pool.",
		}),
		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "mstnet_active_sessions",
			Help: "Number of client sessions currently being handled.",
		}),
		CommandsProcessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mstnet_commands_processed_total",
			Help: "Number of session commands processed, by command name.",
		}, []string{"command"}),
		SolveDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name: "mstnet_mst_solve_duration_seconds",
			Help: "Wall-clock duration of an MST solve, by algorithm.",
		}, []string{"algorithm"}),
	}
}

// ObserveSolve records d as the solve latency for algo.
func (c *Collectors) ObserveSolve(algo string, d time.Duration) {
	c.SolveDuration.WithLabelValues(algo).Observe(d.Seconds())
}

// IncCommand increments the processed count for command.
func (c *Collectors) IncCommand(command string) {
	c.CommandsProcessed.WithLabelValues(command).Inc()
}

// Serve starts a blocking HTTP server exposing /metrics on addr. Intended
// to run in its own goroutine alongside the MST TCP listener.
func Serve(addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{Addr: addr, Handler: mux}
	return server.ListenAndServe()
}
