package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"laptudirm.com/x/rps/internal/rps/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	// A missing .env file is fine, the environment is used as is.
	_ = godotenv.Load()

	if level, found := os.LookupEnv("RPS_LOG_LEVEL"); found {
		parsed, err := logrus.ParseLevel(level)
		if err != nil {
			logrus.Fatal(err)
		}

		logrus.SetLevel(parsed)
	}

	if err := rps(); err != nil {
		logrus.Fatal(err)
	}
}

func rps() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
