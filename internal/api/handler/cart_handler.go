package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quickmart/store-api/internal/api/metrics"
	"github.com/quickmart/store-api/internal/core/ports"
)

type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

// Get handles GET /api/cart. A user who never added anything gets an
// empty cart, not a 404.
//
// @Summary      Get the current user's cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  cartResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/cart [get]
func (h *CartHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	cart, err := h.service.Get(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

// Add handles POST /api/cart — merge semantics, so re-adding a product
// increments its quantity.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      addCartItemRequest  true  "Product reference"
// @Success      200   {object}  cartResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req addCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	cart, err := h.service.AddItem(c.Request().Context(), userID, req.ProductID)
	if err != nil {
		return err
	}

	metrics.CartOpsTotal.WithLabelValues("add").Inc()
	return c.JSON(http.StatusOK, toCartResponse(cart))
}

// Remove handles DELETE /api/cart/:productId. Removing a product that is
// not in the cart succeeds; only a user without any cart gets a 404.
//
// @Summary      Remove a product from the cart
// @Tags         cart
// @Produce      json
// @Security     BearerAuth
// @Param        productId  path      string  true  "Product id"
// @Success      200        {object}  cartResponse
// @Failure      401        {object}  errorResponse
// @Failure      404        {object}  errorResponse
// @Router       /api/cart/{productId} [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	cart, err := h.service.RemoveItem(c.Request().Context(), userID, c.Param("productId"))
	if err != nil {
		return err
	}

	metrics.CartOpsTotal.WithLabelValues("remove").Inc()
	return c.JSON(http.StatusOK, toCartResponse(cart))
}
