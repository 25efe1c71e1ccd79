package room

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "chessroom"

// metric labels
const (
	accepted  = "accepted"
	rejected  = "rejected"
	malformed = "malformed"
	dropped   = "dropped"
	relayed   = "relayed"
)

var (
	connections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "connections_total",
		Help:      "The number of connections by the assigned role.",
	}, []string{"role"})

	online = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "connections_online",
		Help:      "The number of currently connected parties.",
	})

	moves = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "moves_total",
		Help:      "The number of submitted moves by the outcome.",
	}, []string{"result"})

	signals = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signals_total",
		Help:      "The number of signaling messages by the outcome.",
	}, []string{"result"})
)
