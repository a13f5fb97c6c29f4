package main

import (
	"context"
	"flag"
	"os"

	"github.com/joho/godotenv"

	"github.com/Temutjin2k/car-rental-system/config"
	"github.com/Temutjin2k/car-rental-system/internal/app"
	"github.com/Temutjin2k/car-rental-system/pkg/logger"
)

var (
	helpFlag   = flag.Bool("help", false, "Show help message")
	configPath = flag.String("config-path", "config.yaml", "Path to the config yaml file")
)

func main() {
	flag.Parse()
	if *helpFlag {
		config.PrintHelp()
		return
	}

	// .env is optional, real deployments set the environment directly
	godotenv.Load()

	ctx := context.Background()
	log := logger.InitLogger("car-rental-web", logger.LevelDebug)

	cfg, err := config.NewConfig(*configPath)
	if err != nil {
		log.Error(ctx, "failed to configure application", err)
		config.PrintHelp()
		return
	}

	config.PrintConfig(cfg)

	if logger.ValidateLogLevel(cfg.LogLevel) {
		log = logger.InitLogger("car-rental-web", cfg.LogLevel)
	}

	application, err := app.NewApplication(ctx, *cfg, log)
	if err != nil {
		log.Error(ctx, "failed to init application", err)
		os.Exit(1)
	}

	if err = application.Run(ctx); err != nil {
		log.Error(ctx, "failed to run application", err)
		os.Exit(1)
	}
}
