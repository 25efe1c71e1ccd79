package coordinator

import (
	"github.com/giongto35/chessroom/pkg/config"
	"github.com/giongto35/chessroom/pkg/logger"
	"github.com/giongto35/chessroom/pkg/network/httpx"
)

func NewHTTPServer(conf config.Config, log *logger.Logger, fnMux func(*httpx.Mux) *httpx.Mux) (*httpx.Server, error) {
	return httpx.NewServer(
		conf.Room.Server.GetAddr(),
		func(*httpx.Server) httpx.Handler {
			h := httpx.NewServeMux("")
			h.HandleFunc("/healthz", healthz)
			return fnMux(h)
		},
		httpx.WithServerConfig(conf.Room.Server),
		httpx.WithLogger(log),
	)
}

func healthz(w httpx.ResponseWriter, _ *httpx.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok"))
}
