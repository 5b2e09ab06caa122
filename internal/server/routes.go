package server

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes sets up all the application routes. There is no catch-all:
// unmatched paths fall through to the error handler's 404 page.
func (s *Server) RegisterRoutes() {
	s.E.GET("/", s.home.HomeGet)

	s.E.GET("/login", s.auth.LoginGet)
	s.E.POST("/login", s.auth.LoginPost)

	s.E.GET("/signup", s.auth.SignupGet)
	s.E.POST("/signup", s.auth.SignupPost)

	s.E.GET("/admin", s.admin.AdminGet)
	s.E.POST("/admin/products", s.admin.ProductsPost)

	s.E.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
}
