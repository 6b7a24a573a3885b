package main

import (
	"errors"
	"io/fs"
	"log"
	"log/slog"
	"os"

	"github.com/Jacobbrewer1/artemis/cmd/bot/config"
	"github.com/Jacobbrewer1/artemis/pkg/botinfo"
	"github.com/Jacobbrewer1/artemis/pkg/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

func main() {
	envFile := pflag.String("env-file", ".env", "The file to load environment variables from")
	infoFile := pflag.String("info-file", botinfo.DefaultPath, "The YAML file with the bot's branding")
	pflag.Parse()

	// A missing file is fine, the environment may already be set.
	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("error loading %s: %v", *envFile, err)
	}

	a, err := InitializeApp(InfoPath(*infoFile))
	if err != nil {
		log.Fatalln(err)
	}

	if err := config.Parse(a.Log()); err != nil {
		a.Error("Error parsing configuration", slog.String(logging.KeyError, err.Error()))
		os.Exit(1)
	}

	a.Info("Starting application")
	if err := a.Run(); err != nil {
		a.Error("Error running application", slog.String(logging.KeyError, err.Error()))
		os.Exit(1)
	}
}
