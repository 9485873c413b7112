package handler

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Price       float64 `json:"price"       validate:"gte=0"`
	Image       string  `json:"image"       validate:"omitempty,uri"`
	Description string  `json:"description"`
}
