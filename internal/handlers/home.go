package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/marketplace/internal/domain"
	"github.com/nfrund/marketplace/internal/view"
	"github.com/nfrund/marketplace/internal/view/dto/catalog"
	"github.com/nfrund/marketplace/web/src/templates/layouts"
	"github.com/nfrund/marketplace/web/src/templates/pages"
)

// HomeHandler serves the landing page.
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler.
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// HomeGet renders the featured products. It never calls the marketplace.
func (h *HomeHandler) HomeGet(c echo.Context) error {
	data := catalog.HomeData{Products: domain.FeaturedProducts()}
	return renderPage(c, http.StatusOK, "Home", view.GetFlashData(c), pages.Home(data))
}

// NotFound renders the shell with an empty content region.
func NotFound(c echo.Context) error {
	return c.Render(http.StatusNotFound, "", layouts.Base("", view.FlashData{}, nil))
}
