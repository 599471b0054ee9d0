package repository

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/alimikegami/shopigo/internal/domain"
	"github.com/alimikegami/shopigo/pkg/errs"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MemoryProductRepositoryImpl keeps products in process memory. It backs the
// "memory" store driver for local runs and the HTTP tests. Listing follows
// insertion order.
type MemoryProductRepositoryImpl struct {
	mu       sync.RWMutex
	order    []string
	products map[string]domain.Product
}

func CreateNewMemoryRepository() *MemoryProductRepositoryImpl {
	return &MemoryProductRepositoryImpl{
		products: make(map[string]domain.Product),
	}
}

func memoryKey(id domain.ProductID) string {
	if id.IsNative() {
		return "oid:" + id.String()
	}
	return "str:" + id.String()
}

func (r *MemoryProductRepositoryImpl) GetProducts(ctx context.Context, category string, limit int64) (data []domain.Product, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	data = []domain.Product{}
	for _, key := range r.order {
		if limit > 0 && int64(len(data)) >= limit {
			break
		}

		product := r.products[key]
		if category != "" && !strings.EqualFold(product.Category, category) {
			continue
		}
		data = append(data, product)
	}

	return data, nil
}

func (r *MemoryProductRepositoryImpl) GetProductByID(ctx context.Context, id domain.ProductID) (product domain.Product, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[memoryKey(id)]
	if !ok {
		return product, errs.ErrProductNotFound
	}

	return product, nil
}

func (r *MemoryProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id domain.ProductID, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if data.ID.IsZero() {
		data.ID = domain.NativeProductID(primitive.NewObjectID())
	}

	key := memoryKey(data.ID)
	if _, exists := r.products[key]; exists {
		return id, fmt.Errorf("duplicate product id %s", data.ID)
	}

	r.order = append(r.order, key)
	r.products[key] = data

	return data.ID, nil
}

func (r *MemoryProductRepositoryImpl) DeleteProduct(ctx context.Context, id domain.ProductID) (err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := memoryKey(id)
	if _, ok := r.products[key]; !ok {
		return errs.ErrProductNotFound
	}

	delete(r.products, key)
	for i, k := range r.order {
		if k == key {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}

	return nil
}
