package repository

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"github.com/alimikegami/shopigo/internal/domain"
	"github.com/alimikegami/shopigo/pkg/errs"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const productsCollection = "products"

type MongoDBProductRepositoryImpl struct {
	db *mongo.Database
}

func CreateNewMongoDBRepository(db *mongo.Database) ProductRepository {
	return &MongoDBProductRepositoryImpl{db: db}
}

// categoryFilter matches the whole category value case-insensitively. The
// category is quoted so that it is never interpreted as a pattern.
func categoryFilter(category string) bson.D {
	if category == "" {
		return bson.D{}
	}

	return bson.D{{Key: "category", Value: primitive.Regex{
		Pattern: "^" + regexp.QuoteMeta(category) + "$",
		Options: "i",
	}}}
}

func idFilter(id domain.ProductID) bson.D {
	return bson.D{{Key: "_id", Value: id.FilterValue()}}
}

func (r *MongoDBProductRepositoryImpl) GetProducts(ctx context.Context, category string, limit int64) (data []domain.Product, err error) {
	opts := options.Find().SetLimit(limit)

	cursor, err := r.db.Collection(productsCollection).Find(ctx, categoryFilter(category), opts)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, fmt.Errorf("failed to retrieve documents: %w", err)
	}

	defer cursor.Close(ctx)

	data = []domain.Product{}
	if err = cursor.All(ctx, &data); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "GetProducts").Msg("")
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}

	return data, nil
}

func (r *MongoDBProductRepositoryImpl) GetProductByID(ctx context.Context, id domain.ProductID) (product domain.Product, err error) {
	err = r.db.Collection(productsCollection).FindOne(ctx, idFilter(id)).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return product, errs.ErrProductNotFound
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "GetProductByID").Str("product_id", id.String()).Msg("")
		return product, fmt.Errorf("failed to retrieve product: %w", err)
	}

	return product, nil
}

func (r *MongoDBProductRepositoryImpl) AddProduct(ctx context.Context, data domain.Product) (id domain.ProductID, err error) {
	result, err := r.db.Collection(productsCollection).InsertOne(ctx, data)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "AddProduct").Msg("")
		return id, fmt.Errorf("failed to insert product: %w", err)
	}

	switch insertedID := result.InsertedID.(type) {
	case primitive.ObjectID:
		return domain.NativeProductID(insertedID), nil
	case string:
		return domain.StringProductID(insertedID), nil
	default:
		return id, fmt.Errorf("unexpected inserted id type %T", result.InsertedID)
	}
}

func (r *MongoDBProductRepositoryImpl) DeleteProduct(ctx context.Context, id domain.ProductID) (err error) {
	result, err := r.db.Collection(productsCollection).DeleteOne(ctx, idFilter(id))
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "DeleteProduct").Str("product_id", id.String()).Msg("")
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if result.DeletedCount == 0 {
		return errs.ErrProductNotFound
	}

	return nil
}
