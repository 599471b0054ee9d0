package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/alimikegami/shopigo/internal/domain"
	"github.com/alimikegami/shopigo/internal/dto"
	"github.com/alimikegami/shopigo/internal/repository"
	pkgdto "github.com/alimikegami/shopigo/pkg/dto"
	"github.com/alimikegami/shopigo/pkg/errs"
)

// MaxListedProducts caps the size of every product listing.
const MaxListedProducts int64 = 50

type ProductServiceImpl struct {
	repo      repository.ProductRepository
	publisher EventPublisher
	now       func() time.Time
}

// CreateProductService wires the service. publisher may be nil, in which
// case no product events are emitted.
func CreateProductService(repo repository.ProductRepository, publisher EventPublisher) ProductService {
	return &ProductServiceImpl{repo: repo, publisher: publisher, now: time.Now}
}

func (s *ProductServiceImpl) GetProducts(ctx context.Context, filter pkgdto.Filter) (data []domain.Product, err error) {
	data, err = s.repo.GetProducts(ctx, filter.Category, MaxListedProducts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("failed to list products")
		return nil, errs.ErrInternalServer
	}

	return data, nil
}

func (s *ProductServiceImpl) GetProductByID(ctx context.Context, id string) (product domain.Product, err error) {
	product, err = s.repo.GetProductByID(ctx, domain.ParseProductID(id))
	if err != nil {
		if errors.Is(err, errs.ErrProductNotFound) {
			return product, errs.ErrProductNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Msg("failed to fetch product")
		return product, errs.ErrInternalServer
	}

	return product, nil
}

func (s *ProductServiceImpl) AddProduct(ctx context.Context, data dto.ProductRequest) (id domain.ProductID, err error) {
	product, err := data.ToProduct(s.now())
	if err != nil {
		return
	}

	id, err = s.repo.AddProduct(ctx, product)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("failed to add product")
		return id, errs.ErrInternalServer
	}

	product.ID = id
	s.publishEvent(ctx, id, dto.KafkaMessage{
		EventType: dto.EventAddProduct,
		Data:      product,
	})

	return id, nil
}

func (s *ProductServiceImpl) DeleteProduct(ctx context.Context, id string) (err error) {
	productID := domain.ParseProductID(id)

	err = s.repo.DeleteProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, errs.ErrProductNotFound) {
			return errs.ErrProductNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Msg("failed to delete product")
		return errs.ErrDeleteFailed
	}

	s.publishEvent(ctx, productID, dto.KafkaMessage{
		EventType: dto.EventDeleteProduct,
		Data:      dto.Product{ID: productID.String()},
	})

	return nil
}

// publishEvent is best effort: the write already succeeded, so a publishing
// failure is logged and never returned.
func (s *ProductServiceImpl) publishEvent(ctx context.Context, id domain.ProductID, msg dto.KafkaMessage) {
	if s.publisher == nil {
		return
	}

	jsonMsg, err := json.Marshal(msg)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Str("event_type", msg.EventType).Msg("")
		return
	}

	if err = s.publisher.Publish(ctx, id.String(), jsonMsg); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "publishEvent").Str("event_type", msg.EventType).Msg("")
	}
}
