package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/kkyr/fig"
)

// EnvPrefix is prepended to every env override,
// i.e. room.server.address becomes CHESSROOM_ROOM_SERVER_ADDRESS.
const EnvPrefix = "CHESSROOM"

const fileName = "config.yaml"

// searchDirs lists where config.yaml is looked up.
// An explicit path disables the lookup.
func searchDirs(path string) []string {
	if path != "" {
		return []string{path}
	}
	dirs := []string{".", "configs", filepath.Join("..", "..", "configs")}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".chessroom"))
	}
	return dirs
}

// LoadConfig fills the config from config.yaml found in the search dirs
// and then from the env. With no file around only the env is used.
// Returns the dirs that were searched for the file.
func LoadConfig(config any, path string) ([]string, error) {
	dirs := searchDirs(path)
	err := fig.Load(config, fig.File(fileName), fig.Dirs(dirs...), fig.UseEnv(EnvPrefix))
	switch {
	case errors.Is(err, fig.ErrFileNotFound):
		return nil, LoadConfigEnv(config)
	case err != nil:
		return nil, err
	}
	return dirs, nil
}

func LoadConfigEnv(config any) error {
	return fig.Load(config, fig.IgnoreFile(), fig.UseEnv(EnvPrefix))
}
