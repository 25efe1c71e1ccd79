package httpx

import (
	"time"

	"github.com/giongto35/chessroom/pkg/config"
	"github.com/giongto35/chessroom/pkg/logger"
)

type Options struct {
	Tls struct {
		Enabled bool
		// Cert and Key are the certificate files,
		// the Let's Encrypt ones are used when missing.
		Cert      string
		Key       string
		Domain    string
		CertCache string
	}
	// RedirectFrom is the plain HTTP address redirected to HTTPS, none if empty.
	RedirectFrom string
	// PortRoll makes the server try the next ports if the port is busy.
	PortRoll bool

	IdleTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	Logger *logger.Logger
}

type Option func(*Options)

func defaultOptions() Options {
	return Options{
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  500 * time.Second,
		WriteTimeout: 500 * time.Second,
	}
}

func (o *Options) isAutoCert() bool { return o.Tls.Cert == "" || o.Tls.Key == "" }

func WithPortRoll(roll bool) Option        { return func(o *Options) { o.PortRoll = roll } }
func WithLogger(log *logger.Logger) Option { return func(o *Options) { o.Logger = log } }

// WithServerConfig enables HTTPS when configured,
// the plain address then redirects to it.
func WithServerConfig(conf config.Server) Option {
	return func(o *Options) {
		if !conf.Https {
			return
		}
		o.Tls.Enabled = true
		o.Tls.Cert = conf.Tls.HttpsCert
		o.Tls.Key = conf.Tls.HttpsKey
		o.Tls.Domain = conf.Tls.Domain
		o.RedirectFrom = conf.Address
	}
}
