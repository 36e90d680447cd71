package handlers

import (
	stdErrors "errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/aaravmahajanofficial/shopfront/internal/api/middleware"
	"github.com/aaravmahajanofficial/shopfront/internal/errors"
	"github.com/aaravmahajanofficial/shopfront/internal/models"
	service "github.com/aaravmahajanofficial/shopfront/internal/services"
	"github.com/aaravmahajanofficial/shopfront/internal/utils"
	"github.com/aaravmahajanofficial/shopfront/internal/utils/response"
	"github.com/go-playground/validator/v10"
)

const defaultMaxUploadBytes int64 = 10 << 20

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
	maxUploadBytes int64
}

func NewProductHandler(productService service.ProductService, maxUploadBytes int64) *ProductHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}

	return &ProductHandler{productService: productService, validator: validator.New(), maxUploadBytes: maxUploadBytes}
}

// CreateProduct godoc
//
//	@Summary		Create a new product
//	@Description	Creates a catalog product from a multipart form. The optional image is uploaded to the asset store before the product is saved.
//	@Tags			Products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			name		formData	string					true	"Product name"
//	@Param			description	formData	string					true	"Product description"
//	@Param			price		formData	number					true	"Unit price"
//	@Param			image		formData	file					false	"Product image"
//	@Success		201			{object}	models.Product			"Successfully created product"
//	@Failure		400			{object}	response.ErrorResponse	"Validation error or non-image upload"
//	@Failure		500			{object}	response.ErrorResponse	"Image upload or database failure"
//	@Router			/products [post]
func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		if err := h.parseForm(w, r); err != nil {
			logger.Warn("Invalid product form", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		price, err := formPrice(r)
		if err != nil {
			response.Error(w, err)
			return
		}
		if price == nil {
			response.Error(w, errors.ValidationError("Validation failed").WithDetail("Field Price is required"))
			return
		}

		req := models.CreateProductRequest{
			Name:        r.FormValue("name"),
			Description: r.FormValue("description"),
			Price:       *price,
		}

		if !utils.Validate(w, &req, h.validator) {
			logger.Warn("Invalid create product input")
			return
		}

		image, err := formImage(r)
		if err != nil {
			logger.Warn("Unreadable image part", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req, image)
		if err != nil {
			logger.Error("Failed to create product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product created successfully", slog.String("productId", product.ID.String()))
		response.Success(w, http.StatusCreated, product)
	}
}

// GetProduct godoc
//
//	@Summary		Get a product by ID
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		string					true	"Product ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Product			"Successfully retrieved product"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid product ID format"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/products/{id} [get]
func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id)
		if err != nil {
			logger.Error("Failed to get product", slog.String("productId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, product)
	}
}

// UpdateProduct godoc
//
//	@Summary		Update a product
//	@Description	Overwrites only the supplied fields. The image is replaced only when a new one is uploaded.
//	@Tags			Products
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			id			path		string					true	"Product ID (UUID)"	Format(uuid)
//	@Param			name		formData	string					false	"Product name"
//	@Param			description	formData	string					false	"Product description"
//	@Param			price		formData	number					false	"Unit price"
//	@Param			image		formData	file					false	"Replacement image"
//	@Success		200			{object}	models.Product			"Successfully updated product"
//	@Failure		400			{object}	response.ErrorResponse	"Invalid input or product ID"
//	@Failure		404			{object}	response.ErrorResponse	"Product not found"
//	@Failure		500			{object}	response.ErrorResponse	"Internal server error"
//	@Router			/products/{id} [put]
func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		logger = logger.With(slog.String("productId", id.String()))

		if err := h.parseForm(w, r); err != nil {
			logger.Warn("Invalid product form", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		price, err := formPrice(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		req := models.UpdateProductRequest{
			Name:        formString(r, "name"),
			Description: formString(r, "description"),
			Price:       price,
		}

		if !utils.Validate(w, &req, h.validator) {
			logger.Warn("Invalid update product input")
			return
		}

		image, err := formImage(r)
		if err != nil {
			response.Error(w, err)
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, &req, image)
		if err != nil {
			logger.Error("Failed to update product", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product updated successfully")
		response.Success(w, http.StatusOK, product)
	}
}

// DeleteProduct godoc
//
//	@Summary		Delete a product
//	@Tags			Products
//	@Produce		json
//	@Param			id	path		string					true	"Product ID (UUID)"	Format(uuid)
//	@Success		200	{object}	models.Product			"The deleted product"
//	@Failure		400	{object}	response.ErrorResponse	"Invalid product ID format"
//	@Failure		404	{object}	response.ErrorResponse	"Product not found"
//	@Failure		500	{object}	response.ErrorResponse	"Internal server error"
//	@Router			/products/{id} [delete]
func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, err := utils.ParseID(r, "id")
		if err != nil {
			logger.Warn("Invalid product id", slog.String("error", err.Error()))
			response.Error(w, err)
			return
		}

		product, err := h.productService.DeleteProduct(r.Context(), id)
		if err != nil {
			logger.Error("Failed to delete product", slog.String("productId", id.String()), slog.Any("error", err))
			response.Error(w, err)
			return
		}

		logger.Info("Product deleted successfully", slog.String("productId", id.String()))
		response.Success(w, http.StatusOK, product)
	}
}

// ListProducts godoc
//
//	@Summary		List products
//	@Description	Case-insensitive name search with inclusive price bounds, newest first.
//	@Tags			Products
//	@Produce		json
//	@Param			search	query		string						false	"Substring of the product name"
//	@Param			min		query		number						false	"Minimum price"	default(0)
//	@Param			max		query		number						false	"Maximum price"
//	@Param			page	query		int							false	"Page number"		default(1)
//	@Param			limit	query		int							false	"Items per page"	default(8)
//	@Success		200		{object}	models.PaginatedResponse	"Page of products"
//	@Failure		400		{object}	response.ErrorResponse		"Invalid query parameters"
//	@Failure		500		{object}	response.ErrorResponse		"Internal server error"
//	@Router			/products [get]
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())
		query := r.URL.Query()

		page, _ := strconv.Atoi(query.Get("page"))
		limit, _ := strconv.Atoi(query.Get("limit"))
		pageReq := models.NewPageRequest(page, limit)

		filter := models.ProductFilter{Keyword: strings.TrimSpace(query.Get("search"))}

		if raw := query.Get("min"); raw != "" {
			minPrice, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				response.Error(w, errors.BadRequestError("Invalid min price"))
				return
			}
			filter.MinPrice = minPrice
		}

		if raw := query.Get("max"); raw != "" {
			maxPrice, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				response.Error(w, errors.BadRequestError("Invalid max price"))
				return
			}
			filter.MaxPrice = &maxPrice
		}

		products, total, err := h.productService.ListProducts(r.Context(), filter, pageReq)
		if err != nil {
			logger.Error("Failed to fetch products", slog.Any("error", err))
			response.Error(w, err)
			return
		}

		response.Success(w, http.StatusOK, models.PaginatedResponse{
			Data:     products,
			Total:    total,
			Page:     pageReq.Page,
			PageSize: pageReq.Limit,
		})
	}
}

// parseForm accepts multipart and urlencoded bodies up to the configured size.
func (h *ProductHandler) parseForm(w http.ResponseWriter, r *http.Request) error {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)

	err := r.ParseMultipartForm(h.maxUploadBytes)
	if stdErrors.Is(err, http.ErrNotMultipart) {
		err = r.ParseForm()
	}

	if err != nil {
		var maxErr *http.MaxBytesError
		if stdErrors.As(err, &maxErr) {
			return errors.BadRequestError("Request body too large").WithError(err)
		}
		return errors.BadRequestError("Invalid form data").WithError(err)
	}

	return nil
}

func formString(r *http.Request, key string) *string {
	if _, ok := r.Form[key]; !ok {
		return nil
	}

	value := r.FormValue(key)
	return &value
}

func formPrice(r *http.Request) (*float64, error) {
	raw := strings.TrimSpace(r.FormValue("price"))
	if raw == "" {
		return nil, nil
	}

	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, errors.ValidationError("Validation failed").WithDetail("Field Price must be a number")
	}

	return &price, nil
}

func formImage(r *http.Request) (*models.ImageFile, error) {
	file, header, err := r.FormFile("image")
	if err != nil {
		if stdErrors.Is(err, http.ErrMissingFile) || stdErrors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, errors.BadRequestError("Invalid image upload").WithError(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, errors.BadRequestError("Failed to read image upload").WithError(err)
	}

	if len(data) == 0 {
		return nil, nil
	}

	return &models.ImageFile{Filename: header.Filename, Data: data}, nil
}
