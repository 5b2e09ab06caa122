// Package handlers contains the echo handlers for the storefront pages.
package handlers

import (
	"context"
	"errors"
	"log/slog"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/marketplace/internal/api"
	"github.com/nfrund/marketplace/internal/domain"
	"github.com/nfrund/marketplace/internal/view"
	"github.com/nfrund/marketplace/web/src/templates/layouts"
	cmp "maragu.dev/gomponents"
)

// User-facing notifications.
const (
	MsgLoginFailed    = "Login failed"
	MsgSignupFailed   = "Signup failed"
	MsgSignupOK       = "Account created. Please log in."
	MsgUnavailable    = "The marketplace service is unavailable. Please try again."
	MsgProductsFailed = "Could not load products."
	MsgAddFailed      = "Could not add the product."
	MsgProductAdded   = "Product added."
)

// MarketplaceAPI is the part of the marketplace client the handlers use.
type MarketplaceAPI interface {
	Login(ctx context.Context, creds domain.Credentials) (api.LoginResult, error)
	Signup(ctx context.Context, creds domain.Credentials) error
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, sess domain.Session, form domain.ProductForm) (domain.Product, error)
}

// TokenSaver persists the token of a successful login.
type TokenSaver interface {
	Save(c echo.Context, token string) error
}

// EventRecorder announces storefront events.
type EventRecorder interface {
	LoginSucceeded(ctx context.Context, email string)
	SignupCompleted(ctx context.Context, email string)
	ProductCreated(ctx context.Context, p domain.Product)
}

// FragmentRenderer writes several components as one htmx response.
type FragmentRenderer interface {
	Fragments(c echo.Context, status int, components ...any) error
}

// renderPage wraps a page in the base layout and renders it.
func renderPage(c echo.Context, status int, title string, flashes view.FlashData, page cmp.Node) error {
	return c.Render(status, "", layouts.Base(title, flashes, view.AdaptGomponentToTempl(page)))
}

// failureMessage picks the notification for a failed collaborator call and
// logs the cause.
func failureMessage(logger *slog.Logger, op string, err error, fallback string) string {
	switch {
	case err == nil:
		return fallback
	case errors.Is(err, api.ErrUnavailable):
		logger.Warn("Marketplace API unavailable", "op", op, "error", err)
		return MsgUnavailable
	case errors.Is(err, api.ErrMalformedResponse):
		logger.Error("Malformed marketplace response", "op", op, "error", err)
	default:
		logger.Warn("Marketplace API call failed", "op", op, "error", err)
	}
	return fallback
}

func isHTMX(c echo.Context) bool {
	return c.Request().Header.Get("HX-Request") == "true"
}
