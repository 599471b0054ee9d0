package dto

import "github.com/alimikegami/shopigo/internal/domain"

type AddProductResponse struct {
	Message   string           `json:"message"`
	ProductID domain.ProductID `json:"productId"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
