package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lguibr/solopong/host"
	"github.com/lguibr/solopong/utils"
)

func main() {
	configPath := flag.String("config", "", "YAML or JSON config file (defaults apply when empty)")
	frontend := flag.String("frontend", "", "window, terminal or ascii")
	seed := flag.Uint64("seed", 0, "random seed; 0 seeds from the clock")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	logFile := flag.String("log-file", "", "write logs to this file instead of stderr")
	flag.Parse()

	cfg, err := utils.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frontend":
			cfg.Frontend = *frontend
		case "seed":
			cfg.Seed = *seed
		case "log-level":
			cfg.LogLevel = *logLevel
		case "log-file":
			cfg.LogFile = *logFile
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, closer, err := utils.NewLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = host.Run(ctx, cfg, logger)
	stop()

	if err != nil {
		logger.Error("solopong stopped", "error", err)
		closer.Close()
		os.Exit(1)
	}
	closer.Close()
}
