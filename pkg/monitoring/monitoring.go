package monitoring

import (
	"fmt"
	"net/http/pprof"

	"github.com/giongto35/chessroom/pkg/config"
	"github.com/giongto35/chessroom/pkg/logger"
	"github.com/giongto35/chessroom/pkg/network/httpx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const debugEndpoint = "/debug/pprof"
const metricsEndpoint = "/metrics"

type Monitoring struct {
	conf   config.Monitoring
	server *httpx.Server
	log    *logger.Logger
}

// New creates new monitoring service.
func New(conf config.Monitoring, baseAddr string, log *logger.Logger) (*Monitoring, error) {
	serv, err := httpx.NewServer(
		httpx.MergeAddresses(baseAddr, conf.Port),
		func(serv *httpx.Server) httpx.Handler {
			h := httpx.NewServeMux(conf.URLPrefix)
			if conf.ProfilingEnabled {
				h.HandleFunc(debugEndpoint+"/", pprof.Index)
				h.HandleFunc(debugEndpoint+"/cmdline", pprof.Cmdline)
				h.HandleFunc(debugEndpoint+"/profile", pprof.Profile)
				h.HandleFunc(debugEndpoint+"/symbol", pprof.Symbol)
				h.HandleFunc(debugEndpoint+"/trace", pprof.Trace)
				for _, p := range []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} {
					h.Handle(debugEndpoint+"/"+p, pprof.Handler(p))
				}
			}
			if conf.MetricEnabled {
				h.Handle(metricsEndpoint, promhttp.Handler())
			}
			return h
		},
		httpx.WithPortRoll(true),
		httpx.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}
	return &Monitoring{conf: conf, server: serv, log: log}, nil
}

func (m *Monitoring) Run() {
	if m.conf.ProfilingEnabled {
		m.log.Info().Msgf("Profiling is enabled at %v", m.server.Addr+m.conf.URLPrefix+debugEndpoint)
	}
	if m.conf.MetricEnabled {
		m.log.Info().Msgf("Prometheus metric is enabled at %v", m.server.Addr+m.conf.URLPrefix+metricsEndpoint)
	}
	m.server.Run()
}

func (m *Monitoring) Stop() error {
	m.log.Info().Msg("Shutting down monitoring server")
	return m.server.Stop()
}

// Port returns the real port of the server.
func (m *Monitoring) Port() int { return m.server.Port() }

func (m *Monitoring) String() string {
	return fmt.Sprintf("monitoring::%s:%d", m.conf.URLPrefix, m.conf.Port)
}
