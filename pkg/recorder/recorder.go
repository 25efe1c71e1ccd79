// Package recorder writes the games played in the room as PGN files
// and uploads the finished ones to the storage.
package recorder

import (
	"path/filepath"
	"regexp"
	"sync"
	"time"

	"github.com/giongto35/chessroom/pkg/logger"
	oss "github.com/giongto35/chessroom/pkg/os"
	"github.com/giongto35/chessroom/pkg/rules"
	"github.com/giongto35/chessroom/pkg/storage"
	"github.com/rs/xid"
)

const ext = ".pgn"

// naming regexp
var (
	reDate = regexp.MustCompile(`%date:(.*?)%`)
	reId   = regexp.MustCompile(`%id%`)
)

type Recording struct {
	dir   string
	opts  Options
	store storage.CloudStorage
	log   *logger.Logger

	mu      sync.Mutex
	pending []rules.Result
	wake    chan struct{}
	done    chan struct{}
	stopped chan struct{}
	once    sync.Once
	running bool

	// the loop owns these
	game *game
	file *file

	now func() time.Time
}

// NewRecording creates a recorder of the room games.
func NewRecording(store storage.CloudStorage, log *logger.Logger, opts Options) (*Recording, error) {
	opts.setDefaults()
	dir, err := filepath.Abs(opts.Dir)
	if err != nil {
		return nil, err
	}
	if err = oss.CheckCreateDir(dir); err != nil {
		return nil, err
	}
	if store == nil {
		store = &storage.NoopCloudStorage{}
	}
	return &Recording{
		dir:     dir,
		opts:    opts,
		store:   store,
		log:     log,
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		now:     time.Now,
	}, nil
}

// Record queues the accepted move.
func (r *Recording) Record(result rules.Result) {
	r.mu.Lock()
	r.pending = append(r.pending, result)
	r.mu.Unlock()
	select {
	case r.wake <- struct{}{}:
	default:
	}
}

func (r *Recording) Run() {
	r.mu.Lock()
	r.running = true
	r.mu.Unlock()
	go r.loop()
}

// Stop saves the unfinished game and waits for the recorder to finish.
func (r *Recording) Stop() error {
	r.mu.Lock()
	running := r.running
	r.mu.Unlock()
	if !running {
		return nil
	}
	r.once.Do(func() { close(r.done) })
	<-r.stopped
	return nil
}

func (r *Recording) String() string { return "recorder" }

func (r *Recording) loop() {
	defer close(r.stopped)
	for {
		select {
		case <-r.wake:
			r.flush()
		case <-r.done:
			r.flush()
			if r.game != nil {
				r.finish()
			}
			return
		}
	}
}

func (r *Recording) flush() {
	r.mu.Lock()
	results := r.pending
	r.pending = nil
	r.mu.Unlock()

	if len(results) == 0 {
		return
	}
	for _, res := range results {
		if r.game == nil && !r.begin() {
			return
		}
		if err := r.game.add(res); err != nil {
			r.log.Error().Err(err).Str("game", r.game.id).Str("san", res.SAN).Msg("record move")
			continue
		}
		if r.game.isOver() {
			r.finish()
		}
	}
	if r.game != nil {
		r.save()
	}
}

func (r *Recording) begin() bool {
	now := r.now()
	id := xid.New().String()
	name := parseName(r.opts.Name, id, now)
	g, err := newGame(id, name, r.opts.Position, r.opts.Site, now)
	if err != nil {
		r.log.Error().Err(err).Msg("record game")
		return false
	}
	f, err := newFile(r.dir, name+ext)
	if err != nil {
		r.log.Error().Err(err).Msg("record file")
		return false
	}
	r.game, r.file = g, f
	r.log.Info().Msgf("[recording] path will be [%v]", f.path)
	return true
}

func (r *Recording) save() bool {
	if err := r.file.Write(r.game.pgn()); err != nil {
		r.log.Error().Err(err).Str("game", r.game.id).Msg("record save")
		return false
	}
	return true
}

// finish writes the final record and uploads it.
// The next move starts a new game.
func (r *Recording) finish() {
	if r.save() {
		name := r.game.name + ext
		if err := r.store.Save(name, r.file.path); err != nil {
			r.log.Error().Err(err).Str("game", r.game.id).Msg("record upload")
		} else {
			r.log.Info().Str("game", r.game.id).Str("result", r.game.result()).Msg("Game recorded")
		}
	}
	r.game, r.file = nil, nil
}

func parseName(name, id string, now time.Time) (out string) {
	if d := reDate.FindStringSubmatch(name); d != nil {
		out = reDate.ReplaceAllString(name, now.Format(d[1]))
	} else {
		out = name
	}
	return reId.ReplaceAllString(out, id)
}
