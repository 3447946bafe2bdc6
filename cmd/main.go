package main

import (
	"os"
	"os/signal"

	_ "github.com/ClickHouse/clickhouse-go"
	"github.com/coinsurf-com/invite/pkg/server"
	"github.com/jessevdk/go-flags"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	var config server.Config

	parser := flags.NewParser(&config, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt)

	// every component selects on closing, so turn the one signal into a closed channel
	closing := make(chan os.Signal)
	go func() {
		<-signals
		close(closing)
	}()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:      true,
		DisableTimestamp: false,
		FullTimestamp:    true,
	})

	logger.SetLevel(logrus.InfoLevel)
	if config.Debug {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	logger.Info("Starting...")
	defer logger.Info("Stopping...")

	err := server.Listen(closing, &config, logger)
	if err != nil {
		logger.Error("failed to listen: " + err.Error())
	}

	signal.Stop(signals)
}
