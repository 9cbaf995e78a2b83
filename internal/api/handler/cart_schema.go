package handler

import "github.com/sbcommerce/storefront-system/internal/core/domain"

type addCartItemRequest struct {
	ProductID string  `json:"product_id" validate:"required"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type stepRequest struct {
	Step int `json:"step"`
}

// cartResponse projects the cart plus its derived totals. Total and
// count come recomputed from the lines on every response.
type cartResponse struct {
	Lines []domain.CartLine `json:"lines"`
	Total float64           `json:"total"`
	Count int               `json:"count"`
}
