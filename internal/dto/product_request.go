package dto

import (
	"encoding/json"
	"time"

	"github.com/alimikegami/shopigo/internal/domain"
	"github.com/alimikegami/shopigo/pkg/errs"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type ProductRequest struct {
	Title            string             `json:"title" validate:"required"`
	ShortDescription string             `json:"shortDescription"`
	Description      string             `json:"description" validate:"required"`
	Price            *float64           `json:"price" validate:"required,ne=0"`
	Date             domain.ProductDate `json:"date"`
	Priority         string             `json:"priority"`
	Image            string             `json:"image"`
	UserEmail        string             `json:"userEmail" validate:"required"`
	Category         string             `json:"category"`
	Rating           json.Number        `json:"rating"`
}

// Validate rejects a request whose title, price, description or userEmail
// is absent or empty. A zero price counts as absent.
func (r ProductRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return errs.ErrMissingFields
	}

	return nil
}

// ToProduct validates r and builds the product to insert, filling optional
// fields with their defaults and stamping createdAt with now.
func (r ProductRequest) ToProduct(now time.Time) (product domain.Product, err error) {
	if err = r.Validate(); err != nil {
		return
	}

	product = domain.Product{
		Title:            r.Title,
		ShortDescription: r.ShortDescription,
		Description:      r.Description,
		Price:            *r.Price,
		Date:             r.Date,
		Priority:         r.Priority,
		Image:            r.Image,
		Category:         r.Category,
		UserEmail:        r.UserEmail,
		CreatedAt:        now,
	}

	if product.Date.IsZero() {
		product.Date = domain.TimeProductDate(now)
	}

	if product.Priority == "" {
		product.Priority = domain.DefaultPriority
	}

	if product.Category == "" {
		product.Category = domain.DefaultCategory
	}

	if r.Rating != "" {
		if product.Rating, err = r.Rating.Float64(); err != nil {
			return product, errs.ErrInvalidBody
		}
	}

	return product, nil
}
