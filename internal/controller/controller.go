package controller

import (
	"github.com/alimikegami/shopigo/internal/dto"
	"github.com/alimikegami/shopigo/internal/service"
	pkgdto "github.com/alimikegami/shopigo/pkg/dto"
	"github.com/alimikegami/shopigo/pkg/errs"
	"github.com/alimikegami/shopigo/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type Controller struct {
	service service.ProductService
}

func CreateProductController(e *echo.Group, service service.ProductService) {
	c := Controller{
		service: service,
	}
	e.GET("/products", c.GetProducts)
	e.GET("/products/:id", c.GetProductByID)
	e.POST("/products", c.AddProduct)
	e.DELETE("/products/:id", c.DeleteProduct)
}

func (c *Controller) GetProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := (&echo.DefaultBinder{}).BindQueryParams(e, &filter)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "GetProducts").Msg("")
		return response.WriteErrorResponse(e, errs.ErrInvalidBody)
	}

	products, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, products)
}

func (c *Controller) GetProductByID(e echo.Context) error {
	product, err := c.service.GetProductByID(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteSuccessResponse(e, product)
}

func (c *Controller) AddProduct(e echo.Context) error {
	payload := dto.ProductRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrInvalidBody)
	}

	id, err := c.service.AddProduct(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteCreatedResponse(e, dto.AddProductResponse{
		Message:   "Product added successfully",
		ProductID: id,
	})
}

func (c *Controller) DeleteProduct(e echo.Context) error {
	err := c.service.DeleteProduct(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err)
	}

	return response.WriteMessageResponse(e, "Product deleted successfully")
}
