package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/alimikegami/shopigo/internal/domain"
	"github.com/alimikegami/shopigo/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func float(v float64) *float64 {
	return &v
}

func validRequest() ProductRequest {
	return ProductRequest{
		Title:       "Shirt",
		Price:       float(20),
		Description: "desc",
		UserEmail:   "a@b.com",
	}
}

func TestProductRequest_Validate(t *testing.T) {
	type TestCase struct {
		Name    string
		Mutate  func(r *ProductRequest)
		WantErr error
	}

	testCases := []TestCase{
		{Name: "Valid request", Mutate: func(r *ProductRequest) {}},
		{Name: "Missing title", Mutate: func(r *ProductRequest) { r.Title = "" }, WantErr: errs.ErrMissingFields},
		{Name: "Missing price", Mutate: func(r *ProductRequest) { r.Price = nil }, WantErr: errs.ErrMissingFields},
		{Name: "Zero price", Mutate: func(r *ProductRequest) { r.Price = float(0) }, WantErr: errs.ErrMissingFields},
		{Name: "Negative price is present", Mutate: func(r *ProductRequest) { r.Price = float(-5) }},
		{Name: "Whitespace title is present", Mutate: func(r *ProductRequest) { r.Title = " " }},
		{Name: "Missing description", Mutate: func(r *ProductRequest) { r.Description = "" }, WantErr: errs.ErrMissingFields},
		{Name: "Missing user email", Mutate: func(r *ProductRequest) { r.UserEmail = "" }, WantErr: errs.ErrMissingFields},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			req := validRequest()
			tc.Mutate(&req)

			err := req.Validate()
			if tc.WantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.WantErr)
		})
	}
}

func TestProductRequest_ToProductAppliesDefaults(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	product, err := validRequest().ToProduct(now)
	require.NoError(t, err)

	assert.True(t, product.ID.IsZero())
	assert.Equal(t, "Shirt", product.Title)
	assert.Equal(t, 20.0, product.Price)
	assert.Equal(t, "desc", product.Description)
	assert.Equal(t, "a@b.com", product.UserEmail)
	assert.Equal(t, "", product.ShortDescription)
	assert.Equal(t, "", product.Image)
	assert.Equal(t, domain.DefaultPriority, product.Priority)
	assert.Equal(t, domain.DefaultCategory, product.Category)
	assert.Equal(t, 0.0, product.Rating)
	assert.Equal(t, domain.TimeProductDate(now), product.Date)
	assert.Equal(t, now, product.CreatedAt)
}

func TestProductRequest_ToProductKeepsSuppliedFields(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	req := validRequest()
	req.ShortDescription = "short"
	req.Date = domain.TextProductDate("2023-12-24")
	req.Priority = "High"
	req.Image = "https://img.example.com/shirt.png"
	req.Category = "Shoes"
	req.Rating = json.Number("4.5")

	product, err := req.ToProduct(now)
	require.NoError(t, err)

	assert.Equal(t, "short", product.ShortDescription)
	assert.Equal(t, domain.TextProductDate("2023-12-24"), product.Date)
	assert.Equal(t, "High", product.Priority)
	assert.Equal(t, "https://img.example.com/shirt.png", product.Image)
	assert.Equal(t, "Shoes", product.Category)
	assert.Equal(t, 4.5, product.Rating)
	assert.Equal(t, now, product.CreatedAt)
}

func TestProductRequest_ToProductRejectsMissingFields(t *testing.T) {
	_, err := ProductRequest{Title: "Shirt"}.ToProduct(time.Now())

	assert.ErrorIs(t, err, errs.ErrMissingFields)
}

func TestProductRequest_DecodeLooseFields(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	type TestCase struct {
		Name       string
		Body       string
		WantDate   domain.ProductDate
		WantRating float64
	}

	testCases := []TestCase{
		{Name: "Date input value", Body: `{"date":"2024-05-01"}`, WantDate: domain.TextProductDate("2024-05-01")},
		{Name: "US formatted date", Body: `{"date":"05/01/2024"}`, WantDate: domain.TextProductDate("05/01/2024")},
		{Name: "Epoch millis date", Body: `{"date":1714557600000}`, WantDate: domain.NumberProductDate(1714557600000)},
		{Name: "Empty date defaults to now", Body: `{"date":""}`, WantDate: domain.TimeProductDate(now)},
		{Name: "Null date defaults to now", Body: `{"date":null}`, WantDate: domain.TimeProductDate(now)},
		{Name: "False date defaults to now", Body: `{"date":false}`, WantDate: domain.TimeProductDate(now)},
		{Name: "Numeric string rating", Body: `{"rating":"4.5"}`, WantDate: domain.TimeProductDate(now), WantRating: 4.5},
		{Name: "Number rating", Body: `{"rating":3}`, WantDate: domain.TimeProductDate(now), WantRating: 3},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			req := validRequest()
			require.NoError(t, json.Unmarshal([]byte(tc.Body), &req))

			product, err := req.ToProduct(now)
			require.NoError(t, err)

			assert.Equal(t, tc.WantDate, product.Date)
			assert.Equal(t, tc.WantRating, product.Rating)
		})
	}
}

func TestProductRequest_DecodeRejectsUnusableValues(t *testing.T) {
	for _, body := range []string{`{"date":{"day":1}}`, `{"date":true}`, `{"rating":"great"}`} {
		t.Run(body, func(t *testing.T) {
			req := validRequest()

			assert.Error(t, json.Unmarshal([]byte(body), &req))
		})
	}
}
