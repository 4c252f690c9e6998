package payment

import "aistudio-backend/internal/models"

type CreateIntentRequest struct {
	Amount   int64  `json:"amount" binding:"required,gt=0" example:"2999"` // Minor currency units
	Currency string `json:"currency" binding:"omitempty,len=3" example:"usd"`
}

type CheckoutRequest struct {
	ProductID string `json:"product_id" binding:"required,notblank" example:"pro"`
}

type ProductListResponse struct {
	Total int              `json:"total"`
	Items []models.Product `json:"items"`
}
