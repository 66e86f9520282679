package main

import (
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"jokerpoker/internal/config"
)

var command = flag.String("c", "score", "specifies the command (score, jokers, bosses)")

func main() {
	flag.Parse()

	_ = godotenv.Load()
	setupLogger()

	switch *command {
	case "score":
		if err := score(config.Instance()); err != nil {
			logrus.WithError(err).Fatal("could not score hand")
		}
	case "jokers":
		listJokers()
	case "bosses":
		listBosses()
	default:
		logrus.Fatalf("unknown command: %s", *command)
	}
}

func setupLogger() {
	if lvl := config.Instance().Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			logrus.WithError(err).Fatal("could not parse level")
		}

		logrus.SetLevel(level)
	}

	if strings.ToLower(os.Getenv("LOG_FORMAT")) == "json" || !term.IsTerminal(int(os.Stdout.Fd())) {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
}
