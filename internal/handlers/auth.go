package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/marketplace/internal/api"
	"github.com/nfrund/marketplace/internal/domain"
	"github.com/nfrund/marketplace/internal/middleware"
	"github.com/nfrund/marketplace/internal/task"
	"github.com/nfrund/marketplace/internal/view"
	"github.com/nfrund/marketplace/internal/view/dto/auth"
	"github.com/nfrund/marketplace/web/src/templates/pages"
)

// AuthHandler handles login and signup.
type AuthHandler struct {
	api    MarketplaceAPI
	tokens TokenSaver
	events EventRecorder
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(client MarketplaceAPI, tokens TokenSaver, events EventRecorder) *AuthHandler {
	return &AuthHandler{
		api:    client,
		tokens: tokens,
		events: events,
	}
}

// LoginGet renders the login form.
func (h *AuthHandler) LoginGet(c echo.Context) error {
	return renderPage(c, http.StatusOK, "Login", view.GetFlashData(c), pages.Login(auth.LoginData{}))
}

// LoginPost exchanges the credentials for a token. Any decodable response
// carrying a token is a success regardless of its status; everything else
// re-renders the form with what the user typed.
func (h *AuthHandler) LoginPost(c echo.Context) error {
	var creds domain.Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid login form")
	}

	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	res := task.Run(ctx, func(ctx context.Context) (api.LoginResult, error) {
		return h.api.Login(ctx, creds)
	})
	if !res.OK() || !res.Value.HasToken() {
		msg := failureMessage(logger, "login", res.Err, MsgLoginFailed)
		data := auth.LoginData{Email: creds.Email}
		return renderPage(c, http.StatusOK, "Login", view.FlashData{}.WithError(msg), pages.Login(data))
	}

	if err := h.tokens.Save(c, res.Value.Token); err != nil {
		return fmt.Errorf("failed to store session token: %w", err)
	}
	h.events.LoginSucceeded(ctx, creds.Email)

	logger.Info("User logged in", "email", creds.Email)
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// SignupGet renders the signup form.
func (h *AuthHandler) SignupGet(c echo.Context) error {
	return renderPage(c, http.StatusOK, "Signup", view.GetFlashData(c), pages.Signup(auth.SignupData{}))
}

// SignupPost registers the credentials. Only the response status matters;
// signup never yields a token.
func (h *AuthHandler) SignupPost(c echo.Context) error {
	var creds domain.Credentials
	if err := c.Bind(&creds); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid signup form")
	}

	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)

	res := task.Run(ctx, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, h.api.Signup(ctx, creds)
	})
	if !res.OK() {
		msg := failureMessage(logger, "signup", res.Err, MsgSignupFailed)
		data := auth.SignupData{Email: creds.Email}
		return renderPage(c, http.StatusOK, "Signup", view.FlashData{}.WithError(msg), pages.Signup(data))
	}
	h.events.SignupCompleted(ctx, creds.Email)

	view.SetFlashSuccess(c, MsgSignupOK)
	return c.Redirect(http.StatusSeeOther, "/login")
}
