package handler

import "github.com/quickmart/store-api/internal/core/domain"

type addCartItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type cartLineResponse struct {
	Product  domain.Product `json:"product"`
	Quantity int            `json:"quantity"`
	Subtotal float64        `json:"subtotal"`
}

type cartResponse struct {
	UserID string             `json:"user_id"`
	Items  []cartLineResponse `json:"items"`
	Total  float64            `json:"total"`
}

func toCartResponse(cart *domain.ResolvedCart) cartResponse {
	items := make([]cartLineResponse, 0, len(cart.Items))
	for _, line := range cart.Items {
		items = append(items, cartLineResponse{
			Product:  line.Product,
			Quantity: line.Quantity,
			Subtotal: line.Product.Price * float64(line.Quantity),
		})
	}
	return cartResponse{
		UserID: cart.UserID,
		Items:  items,
		Total:  cart.Total,
	}
}
