package main

import (
	"context"
	"flag"
	"os"
	"time"

	"mf-api/internal/smoke"

	"github.com/sirupsen/logrus"
)

func main() {
	baseURL := flag.String("base-url", "http://localhost:8000", "base URL of the deployed API")
	timeout := flag.Duration("timeout", 30*time.Second, "timeout per request")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	log.WithField("base_url", *baseURL).Info("running smoke checks")

	report := smoke.NewChecker(*baseURL, *timeout).Run(context.Background(), smoke.DefaultChecks)
	report.Write(os.Stdout)

	if !report.Passed() {
		log.Error("smoke checks failed")
		os.Exit(1)
	}
	log.Info("all smoke checks passed")
}
