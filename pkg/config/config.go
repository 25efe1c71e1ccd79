package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

type Config struct {
	Room      Room
	Recording Recording
	Storage   Storage
	Webrtc    Webrtc

	// config file dirs, filled on load
	paths []string
}

type Room struct {
	Debug   bool
	NoColor bool
	// Origin restricts websocket upgrades to this origin, any if empty.
	Origin string
	// StartPosition is the FEN the room starts with.
	StartPosition string `default:"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"`
	// SendQueue is the outbound message buffer size of each connection.
	SendQueue  int `default:"64"`
	Monitoring Monitoring
	Server     Server
}

// MinSendQueue fits all the events a connection gets on join
// (role, board, ICE servers, players) before its writer starts.
const MinSendQueue = 8

// Queue returns the send queue size, no less than MinSendQueue.
func (r *Room) Queue() int {
	if r.SendQueue < MinSendQueue {
		return MinSendQueue
	}
	return r.SendQueue
}

type Monitoring struct {
	Port             int `default:"6601"`
	URLPrefix        string
	MetricEnabled    bool
	ProfilingEnabled bool
}

func (c *Monitoring) IsEnabled() bool { return c.MetricEnabled || c.ProfilingEnabled }

type Server struct {
	Address string `default:":3000"`
	Https   bool
	Tls     struct {
		Address   string `default:":443"`
		Domain    string
		HttpsKey  string
		HttpsCert string
	}
}

func (s *Server) GetAddr() string {
	if s.Https {
		return s.Tls.Address
	}
	return s.Address
}

// Recording keeps the games as PGN files.
type Recording struct {
	Enabled bool
	// Folder is the place for the recordings.
	Folder string `default:"recording"`
	// Name is the file name template:
	//	%date:layout% - the start time in Go time layout,
	//	%id% - a random unique id.
	Name string `default:"%date:20060102-150405%_%id%"`
}

// Storage is where the finished recordings are uploaded.
type Storage struct {
	// Provider is one of: noop, google, oracle.
	Provider string `default:"noop"`
	// Bucket is the Google Cloud Storage bucket name.
	Bucket string `default:"chessroom-games"`
	// AccessURL is the Oracle pre-authenticated request URL.
	AccessURL string
}

type Webrtc struct {
	IceServers []IceServer
}

type IceServer struct {
	Urls       string `json:"urls,omitempty"`
	Username   string `json:"username,omitempty"`
	Credential string `json:"credential,omitempty"`
}

// AddIceServersEnv replaces up to 5 ICE servers with
// the CHESSROOM_ICESERVERS_N_URLS (_USERNAME, _CREDENTIAL) env values.
func (w *Webrtc) AddIceServersEnv() {
	cfg := Webrtc{IceServers: []IceServer{{}, {}, {}, {}, {}}}
	if err := LoadConfigEnv(&cfg); err != nil {
		return
	}
	for i, ice := range cfg.IceServers {
		if ice.Urls == "" {
			continue
		}
		if i > len(w.IceServers)-1 {
			w.IceServers = append(w.IceServers, ice)
		} else {
			w.IceServers[i] = ice
		}
	}
}

// NewConfig loads the config from the path (or default dirs)
// and then applies command line flags on top of it.
func NewConfig(args []string) (conf Config, err error) {
	path, err := confPath(args)
	if err != nil {
		return conf, err
	}
	paths, err := LoadConfig(&conf, path)
	if err != nil {
		return conf, fmt.Errorf("config load: %w", err)
	}
	conf.paths = paths
	conf.Webrtc.AddIceServersEnv()

	fs := pflag.NewFlagSet("chessroom", pflag.ContinueOnError)
	conf.AddFlags(fs)
	fs.String("conf", path, "Set custom configuration file path")
	if err = fs.Parse(args); err != nil {
		return conf, err
	}
	return conf, nil
}

// Paths returns the dirs where the config file was looked for.
func (c *Config) Paths() []string { return c.paths }

func (c *Config) AddFlags(fs *pflag.FlagSet) *Config {
	fs.StringVarP(&c.Room.Server.Address, "address", "a", c.Room.Server.Address, "HTTP server address (host:port)")
	fs.StringVar(&c.Room.Server.Tls.Address, "httpsAddress", c.Room.Server.Tls.Address, "HTTPS server address (host:port)")
	fs.StringVar(&c.Room.Server.Tls.HttpsKey, "httpsKey", c.Room.Server.Tls.HttpsKey, "HTTPS key")
	fs.StringVar(&c.Room.Server.Tls.HttpsCert, "httpsCert", c.Room.Server.Tls.HttpsCert, "HTTPS chain")
	fs.BoolVarP(&c.Room.Debug, "debug", "d", c.Room.Debug, "Enable debug logs")
	fs.IntVar(&c.Room.Monitoring.Port, "monitoring.port", c.Room.Monitoring.Port, "Monitoring server port")
	fs.BoolVarP(&c.Room.Monitoring.MetricEnabled, "monitoring.metric", "m", c.Room.Monitoring.MetricEnabled, "Enable prometheus metric for server")
	fs.BoolVar(&c.Recording.Enabled, "recording", c.Recording.Enabled, "Record games as PGN")
	return c
}

// confPath extracts the --conf value before the config is loaded.
func confPath(args []string) (string, error) {
	fs := pflag.NewFlagSet("conf", pflag.ContinueOnError)
	fs.ParseErrorsWhitelist.UnknownFlags = true
	fs.Usage = func() {}
	path := fs.String("conf", "", "")
	// help is handled by the second pass
	fs.BoolP("help", "h", false, "")
	if err := fs.Parse(args); err != nil {
		return "", err
	}
	return *path, nil
}
