package httpx

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/giongto35/chessroom/pkg/logger"
	"golang.org/x/crypto/acme/autocert"
)

type (
	Handler        = http.Handler
	HandlerFunc    = http.HandlerFunc
	ResponseWriter = http.ResponseWriter
	Request        = http.Request
)

// Mux is a ServeMux with all the routes under a common prefix.
type Mux struct {
	*http.ServeMux
	prefix string
}

func NewServeMux(prefix string) *Mux { return &Mux{ServeMux: http.NewServeMux(), prefix: prefix} }

func (m *Mux) Handle(pattern string, handler Handler) *Mux {
	m.ServeMux.Handle(m.prefix+pattern, handler)
	return m
}

func (m *Mux) HandleFunc(pattern string, handler func(ResponseWriter, *Request)) *Mux {
	m.ServeMux.HandleFunc(m.prefix+pattern, handler)
	return m
}

type Server struct {
	http.Server

	opts     Options
	listener *Listener
	certs    *autocert.Manager
	redirect *Server
	log      *logger.Logger
}

// NewServer binds the address right away, so the real
// address (i.e. with the rolled or random port) is known
// before the server runs.
func NewServer(address string, handler func(*Server) Handler, options ...Option) (*Server, error) {
	opts := defaultOptions()
	for _, opt := range options {
		opt(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logger.Default()
	}

	if address == "" {
		address = ":http"
		if opts.Tls.Enabled {
			address = ":https"
		}
		opts.Logger.Warn().Msgf("Empty server address has been changed to %v", address)
	}
	ls, err := NewListener(address, opts.PortRoll)
	if err != nil {
		return nil, err
	}

	s := &Server{
		Server: http.Server{
			Addr:         buildAddress(address, *ls),
			IdleTimeout:  opts.IdleTimeout,
			ReadTimeout:  opts.ReadTimeout,
			WriteTimeout: opts.WriteTimeout,
		},
		opts:     opts,
		listener: ls,
		log:      opts.Logger,
	}
	if opts.Tls.Enabled && opts.isAutoCert() {
		s.certs = autoCert(opts.Tls.Domain, opts.Tls.CertCache)
		s.TLSConfig = s.certs.TLSConfig()
	}
	s.Handler = handler(s)
	s.log.Debug().Msgf("httpx %v (%v)", s.Addr, address)
	return s, nil
}

func (s *Server) Run() {
	if s.opts.Tls.Enabled && s.opts.RedirectFrom != "" {
		rdr, err := s.redirection()
		if err != nil {
			s.log.Error().Err(err).Msg("couldn't init redirection server")
		} else {
			s.redirect = rdr
			s.redirect.Run()
		}
	}
	go s.serve()
}

func (s *Server) serve() {
	s.log.Debug().Msgf("Starting %s server on %s", s.GetProtocol(), s.Addr)
	var err error
	if s.opts.Tls.Enabled {
		err = s.ServeTLS(*s.listener, s.opts.Tls.Cert, s.opts.Tls.Key)
	} else {
		err = s.Serve(*s.listener)
	}
	if errors.Is(err, http.ErrServerClosed) {
		s.log.Debug().Msgf("%s server was closed", s.GetProtocol())
		return
	}
	s.log.Error().Err(err).Msgf("%s server failed", s.GetProtocol())
}

func (s *Server) Stop() error {
	if s.redirect != nil {
		_ = s.redirect.Stop()
	}
	return s.Server.Close()
}

func (s *Server) GetHost() string { return extractHost(s.Addr) }

// Port returns the real port of the server listener.
func (s *Server) Port() int { return s.listener.GetPort() }

func (s *Server) GetProtocol() string {
	if s.opts.Tls.Enabled {
		return "https"
	}
	return "http"
}

func (s *Server) String() string { return fmt.Sprintf("%s://%s", s.GetProtocol(), s.Addr) }

// redirection makes a plain HTTP server sending everyone to HTTPS.
// It also answers the ACME HTTP challenges.
func (s *Server) redirection() (*Server, error) {
	host := s.Addr
	if s.opts.Tls.Domain != "" {
		host = buildAddress(s.opts.Tls.Domain, *s.listener)
	}
	return NewServer(s.opts.RedirectFrom, func(*Server) Handler {
		var h Handler = HandlerFunc(func(w ResponseWriter, r *Request) {
			to := url.URL{Scheme: "https", Host: host, Path: r.URL.Path, RawQuery: r.URL.RawQuery}
			s.log.Debug().Str("from", r.Host+r.URL.String()).Str("to", to.String()).Msg("Redirect")
			http.Redirect(w, r, to.String(), http.StatusFound)
		})
		if s.certs != nil {
			h = s.certs.HTTPHandler(h)
		}
		return h
	}, WithLogger(s.log))
}
