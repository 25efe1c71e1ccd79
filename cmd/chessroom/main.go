package main

import (
	"context"
	"errors"
	"time"

	"github.com/giongto35/chessroom/pkg/config"
	"github.com/giongto35/chessroom/pkg/coordinator"
	"github.com/giongto35/chessroom/pkg/logger"
	"github.com/giongto35/chessroom/pkg/os"
	"github.com/spf13/pflag"
)

var Version = "?"

func main() {
	conf, err := config.NewConfig(os.Args())
	if err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		logger.Default().Fatal().Err(err).Msg("config")
	}

	log := logger.NewConsole(conf.Room.Debug, "r", conf.Room.NoColor)

	log.Info().Msgf("version %s", Version)
	log.Info().Msgf("config dirs: %v", conf.Paths())
	if log.GetLevel() < logger.InfoLevel {
		log.Debug().Msgf("config: %+v", conf)
	}
	c, err := coordinator.New(conf, log)
	if err != nil {
		log.Error().Err(err).Msg("room init fail")
		return
	}
	c.Start()
	log.Info().Msgf("Room is open at %v", c.Addr())

	<-os.ExpectTermination()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := c.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("service shutdown errors")
	}
}
