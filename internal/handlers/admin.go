package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/marketplace/internal/domain"
	"github.com/nfrund/marketplace/internal/middleware"
	"github.com/nfrund/marketplace/internal/task"
	"github.com/nfrund/marketplace/internal/view"
	"github.com/nfrund/marketplace/internal/view/dto/catalog"
	"github.com/nfrund/marketplace/web/src/templates/components"
	"github.com/nfrund/marketplace/web/src/templates/pages"
)

// AdminHandler serves the product management page.
type AdminHandler struct {
	api       MarketplaceAPI
	events    EventRecorder
	fragments FragmentRenderer
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(client MarketplaceAPI, events EventRecorder, fragments FragmentRenderer) *AdminHandler {
	return &AdminHandler{
		api:       client,
		events:    events,
		fragments: fragments,
	}
}

// AdminGet loads the product list and renders the dashboard. A failed load
// leaves the list empty and shows a notification.
func (h *AdminHandler) AdminGet(c echo.Context) error {
	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)
	flashes := view.GetFlashData(c)

	data := catalog.AdminData{Authenticated: middleware.SessionFrom(c).IsAuthenticated()}

	res := task.Run(ctx, h.api.ListProducts)
	if res.OK() {
		data = data.Loaded(res.Value)
	} else {
		flashes = flashes.WithError(failureMessage(logger, "list products", res.Err, MsgProductsFailed))
	}

	return renderPage(c, http.StatusOK, "Admin", flashes, pages.Admin(data))
}

// ProductsPost creates a product with the caller's token. htmx requests get
// the new list item plus an out-of-band empty form; plain posts are
// redirected back to the dashboard.
func (h *AdminHandler) ProductsPost(c echo.Context) error {
	var form domain.ProductForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid product form")
	}

	ctx := c.Request().Context()
	logger := middleware.FromContext(ctx)
	sess := middleware.SessionFrom(c)

	res := task.Run(ctx, func(ctx context.Context) (domain.Product, error) {
		return h.api.CreateProduct(ctx, sess, form)
	})
	if !res.OK() {
		msg := failureMessage(logger, "create product", res.Err, MsgAddFailed)
		if isHTMX(c) {
			// Keep the list and the typed values; only the notification changes.
			c.Response().Header().Set("HX-Reswap", "none")
			return h.fragments.Fragments(c, http.StatusOK,
				components.Notifications(view.FlashData{}.WithError(msg), true),
			)
		}
		view.SetFlashError(c, msg)
		return c.Redirect(http.StatusSeeOther, "/admin")
	}

	product := res.Value
	h.events.ProductCreated(ctx, product)
	logger.Info("Product created", "id", product.ID, "name", product.Name)

	if isHTMX(c) {
		next := catalog.AdminData{Form: form}.Added(product)
		return h.fragments.Fragments(c, http.StatusOK,
			components.ProductItem(product),
			components.ProductForm(next.Form, true),
			components.Notifications(view.FlashData{}, true),
		)
	}

	view.SetFlashSuccess(c, MsgProductAdded)
	return c.Redirect(http.StatusSeeOther, "/admin")
}
