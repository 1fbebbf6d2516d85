package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minimart/storefront/internal/api/metrics"
	"github.com/minimart/storefront/internal/core/domain"
	"github.com/minimart/storefront/internal/core/ports"
)

// CartHandler serves the caller's own cart. The owning user id is always
// the session identity — there is no cart id in any route, which is what
// enforces per-user isolation at the transport layer.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// Get handles GET /cart.
//
// @Summary      Get own cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	caller, err := mustCaller(c)
	if err != nil {
		return err
	}

	items, err := h.service.Get(c.Request().Context(), caller.ID)
	if err != nil {
		return err
	}
	return success(c, http.StatusOK, "Cart fetched successfully", items)
}

// Replace handles PUT /cart — full replacement of the caller's cart.
//
// @Summary      Replace own cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      replaceCartRequest  true  "Cart lines"
// @Success      200   {object}  envelope
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /cart [put]
func (h *CartHandler) Replace(c echo.Context) error {
	caller, err := mustCaller(c)
	if err != nil {
		return err
	}

	var req replaceCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	items := make([]domain.CartItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = domain.CartItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			ImageURL:  item.ImageURL,
			Quantity:  item.Quantity,
		}
	}

	stored, err := h.service.Replace(c.Request().Context(), caller.ID, items)
	if err != nil {
		return err
	}

	metrics.CartUpdatesTotal.Inc()
	return success(c, http.StatusOK, "Cart updated successfully", stored)
}

// Checkout handles POST /cart/checkout — clears the caller's cart.
//
// @Summary      Checkout own cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Router       /cart/checkout [post]
func (h *CartHandler) Checkout(c echo.Context) error {
	caller, err := mustCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.Checkout(c.Request().Context(), caller.ID); err != nil {
		return err
	}

	metrics.CartCheckoutsTotal.Inc()
	return success(c, http.StatusOK, "Checkout complete", nil)
}
