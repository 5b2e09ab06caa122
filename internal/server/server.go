package server

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/marketplace/internal/config"
	"github.com/nfrund/marketplace/internal/handlers"
	"github.com/nfrund/marketplace/internal/middleware"
	"github.com/nfrund/marketplace/internal/rendering"
	appsession "github.com/nfrund/marketplace/internal/session"
	"github.com/nfrund/marketplace/web"
)

// Dependencies holds everything the HTTP server needs.
type Dependencies struct {
	Config   config.Provider
	Logger   *slog.Logger
	Renderer *rendering.Renderer
	Sessions *appsession.Cookie
	Home     *handlers.HomeHandler
	Auth     *handlers.AuthHandler
	Admin    *handlers.AdminHandler
}

// Server is the storefront HTTP server.
type Server struct {
	E      *echo.Echo
	cfg    config.Provider
	logger *slog.Logger
	home   *handlers.HomeHandler
	auth   *handlers.AuthHandler
	admin  *handlers.AdminHandler
}

// New creates a Server with its middleware chain and routes registered.
func New(deps Dependencies) *Server {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = deps.Renderer
	setupErrorHandling(e)

	e.Use(echomw.RequestIDWithConfig(echomw.RequestIDConfig{Generator: uuid.NewString}))
	e.Use(middleware.Logger(logger))
	e.Use(middleware.RequestLog(logger))
	e.Use(echomw.Recover())

	store := sessions.NewCookieStore([]byte(deps.Config.GetSessionSecret()))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   !deps.Config.IsDevelopment(),
		SameSite: http.SameSiteLaxMode,
	}
	e.Use(session.Middleware(store))
	e.Use(middleware.Session(deps.Sessions))

	e.StaticFS("/static", echo.MustSubFS(web.FS, "static"))

	s := &Server{
		E:      e,
		cfg:    deps.Config,
		logger: logger,
		home:   deps.Home,
		auth:   deps.Auth,
		admin:  deps.Admin,
	}
	s.RegisterRoutes()
	return s
}
