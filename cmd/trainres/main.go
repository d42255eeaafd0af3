// Command trainres is an interactive train reservation terminal.
//
// Trains, standalone routes and accounts are loaded from the data directory
// at start and saved back after every change. Bookings last for one session.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/shriyamishra-ctrl/Train-Reservation-system/account"
	"github.com/shriyamishra-ctrl/Train-Reservation-system/config"
	"github.com/shriyamishra-ctrl/Train-Reservation-system/reservation"
	"github.com/shriyamishra-ctrl/Train-Reservation-system/shell"
	"github.com/shriyamishra-ctrl/Train-Reservation-system/store"
)

func main() {
	conf, confErr := config.Load(".env", ".env.local")
	dataDir := flag.String("data", conf.DataDir, "directory holding trains.txt, routes.txt and users.txt")
	level := zap.LevelFlag("log-level", conf.LogLevel, "set log level")
	flag.Parse()

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(*level)
	dev, err := cfg.Build()
	if err != nil {
		panic(err)
	}
	zap.ReplaceGlobals(dev)
	if confErr != nil {
		zap.S().Warnf("ignoring env file: %v", confErr)
	}

	err = run(conf, *dataDir)
	if errors.Is(err, context.Canceled) {
		zap.S().Info("interrupted")
		err = nil
	}
	if err != nil {
		zap.S().Errorf("trainres: %v", err)
	}
	_ = zap.S().Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(conf *config.Config, dataDir string) error {
	log := zap.L()
	files := store.NewFiles(dataDir, conf.DefaultDistance, log.Named("store"))
	snap, err := files.Load()
	if err != nil {
		return err
	}

	sys := reservation.New(reservation.WithLogger(log.Named("reservation")))
	if err := sys.Restore(snap); err != nil {
		// Keep going with whatever restored cleanly.
		log.Warn("restore incomplete", zap.Error(err))
	}
	users := account.NewRegistry(snap.Users, account.WithCost(conf.BcryptCost))

	stats := sys.Graph().Stats()
	log.Info("loaded",
		zap.String("dir", dataDir),
		zap.Int("trains", len(snap.Trains)),
		zap.Int("stations", stats.VertexCount),
		zap.Int("routes", stats.EdgeCount),
		zap.Int("users", users.Len()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sh := shell.New(sys, users, os.Stdin, os.Stdout,
		shell.WithSaver(files),
		shell.WithLogger(log.Named("shell")),
		shell.WithDefaultDistance(conf.DefaultDistance),
	)

	return sh.Run(ctx)
}
