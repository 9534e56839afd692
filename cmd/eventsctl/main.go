package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"eventsportal/config"
	"eventsportal/internal/adapters/httpclient"
	"eventsportal/internal/adapters/ical"
	"eventsportal/internal/adapters/sessionfile"
	"eventsportal/internal/delivery/cli"
	"eventsportal/internal/i18n"
	"eventsportal/internal/repository/rest"
	"eventsportal/internal/store"
	"eventsportal/internal/usecase"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		log.Printf("failed to load config: %v", err)
		return cli.ExitError
	}
	logger := config.NewLogger(cfg, os.Stderr)

	text, err := i18n.New(cfg.Locale)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return cli.ExitError
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The client reads the token from the auth store, which is built after it.
	var authStore *store.AuthStore
	client := httpclient.NewClient(
		cfg.APIURL,
		&http.Client{Timeout: cfg.RequestTimeout},
		httpclient.TokenFunc(func() string { return authStore.Token() }),
		logger,
	)

	authStore = store.NewAuthStore(
		usecase.NewAuthUseCases(rest.NewAuthRepository(client)),
		sessionfile.New(cfg.SessionFile),
		logger,
	)
	eventStore := store.NewEventStore(usecase.NewEventUseCases(rest.NewEventRepository(client)), logger)

	app := cli.New(cli.Deps{
		Auth:     authStore,
		Events:   eventStore,
		Text:     text,
		Exporter: ical.NewExporter(""),
		Logger:   logger,
		In:       os.Stdin,
		Out:      os.Stdout,
		Err:      os.Stderr,
	})
	return app.Run(ctx, os.Args[1:])
}
