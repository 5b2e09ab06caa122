// Package app is the composition root. It registers every service in a
// samber/do container; the server and the CLI invoke what they need from it.
package app

import (
	"log/slog"

	"github.com/nfrund/marketplace/internal/api"
	"github.com/nfrund/marketplace/internal/config"
	"github.com/nfrund/marketplace/internal/events"
	"github.com/nfrund/marketplace/internal/handlers"
	"github.com/nfrund/marketplace/internal/pubsub"
	"github.com/nfrund/marketplace/internal/rendering"
	"github.com/nfrund/marketplace/internal/server"
	"github.com/nfrund/marketplace/internal/session"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// New builds the container. Services are created lazily on first invoke.
func New(cfg config.Provider, logger *slog.Logger, fsys afero.Fs) do.Injector {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, fsys)

	do.Provide(injector, newAPIClient)
	do.Provide(injector, newEventBus)
	do.Provide(injector, newRecorder)
	do.Provide(injector, newCookieSessions)
	do.Provide(injector, newTokenFile)
	do.Provide(injector, newRenderer)
	do.Provide(injector, newHomeHandler)
	do.Provide(injector, newAuthHandler)
	do.Provide(injector, newAdminHandler)
	do.Provide(injector, newServer)

	return injector
}

func newAPIClient(i do.Injector) (*api.Client, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return api.NewClient(cfg.GetAPIURL(), api.WithTimeout(cfg.GetAPITimeout())), nil
}

func newEventBus(i do.Injector) (*pubsub.WatermillBridge, error) {
	return pubsub.NewWatermillBridge(do.MustInvoke[*slog.Logger](i)), nil
}

func newRecorder(i do.Injector) (*events.Recorder, error) {
	bus := do.MustInvoke[*pubsub.WatermillBridge](i)
	return events.NewRecorder(bus, do.MustInvoke[*slog.Logger](i)), nil
}

func newCookieSessions(do.Injector) (*session.Cookie, error) {
	return session.NewCookie(), nil
}

func newTokenFile(i do.Injector) (*session.File, error) {
	cfg := do.MustInvoke[config.Provider](i)
	return session.NewFile(do.MustInvoke[afero.Fs](i), cfg.GetTokenFile()), nil
}

func newRenderer(do.Injector) (*rendering.Renderer, error) {
	return rendering.New(), nil
}

func newHomeHandler(do.Injector) (*handlers.HomeHandler, error) {
	return handlers.NewHomeHandler(), nil
}

func newAuthHandler(i do.Injector) (*handlers.AuthHandler, error) {
	return handlers.NewAuthHandler(
		do.MustInvoke[*api.Client](i),
		do.MustInvoke[*session.Cookie](i),
		do.MustInvoke[*events.Recorder](i),
	), nil
}

func newAdminHandler(i do.Injector) (*handlers.AdminHandler, error) {
	return handlers.NewAdminHandler(
		do.MustInvoke[*api.Client](i),
		do.MustInvoke[*events.Recorder](i),
		do.MustInvoke[*rendering.Renderer](i),
	), nil
}

func newServer(i do.Injector) (*server.Server, error) {
	return server.New(server.Dependencies{
		Config:   do.MustInvoke[config.Provider](i),
		Logger:   do.MustInvoke[*slog.Logger](i),
		Renderer: do.MustInvoke[*rendering.Renderer](i),
		Sessions: do.MustInvoke[*session.Cookie](i),
		Home:     do.MustInvoke[*handlers.HomeHandler](i),
		Auth:     do.MustInvoke[*handlers.AuthHandler](i),
		Admin:    do.MustInvoke[*handlers.AdminHandler](i),
	}), nil
}
