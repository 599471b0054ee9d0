package repository

import (
	"context"

	"github.com/alimikegami/shopigo/internal/domain"
)

type ProductRepository interface {
	// GetProducts returns at most limit products, all of them when category
	// is empty, otherwise those whose category equals it ignoring case.
	GetProducts(ctx context.Context, category string, limit int64) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id domain.ProductID) (product domain.Product, err error)
	AddProduct(ctx context.Context, data domain.Product) (id domain.ProductID, err error)
	DeleteProduct(ctx context.Context, id domain.ProductID) (err error)
}
