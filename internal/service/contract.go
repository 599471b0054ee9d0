package service

import (
	"context"

	"github.com/alimikegami/shopigo/internal/domain"
	"github.com/alimikegami/shopigo/internal/dto"
	pkgdto "github.com/alimikegami/shopigo/pkg/dto"
)

type ProductService interface {
	GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, err error)
	GetProductByID(ctx context.Context, id string) (product domain.Product, err error)
	AddProduct(ctx context.Context, data dto.ProductRequest) (id domain.ProductID, err error)
	DeleteProduct(ctx context.Context, id string) (err error)
}

// EventPublisher delivers product events keyed by product id.
type EventPublisher interface {
	Publish(ctx context.Context, key string, value []byte) error
}
