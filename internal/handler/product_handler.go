package handler

import (
	"net/http"
	"strconv"

	"gocart/internal/model"
	"gocart/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ProductHandler handles catalogue-related HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// Create handles POST /products. The body is multipart: scalar fields plus
// zero or more image files under "images".
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	req, ok := h.parseProductForm(w, r)
	if !ok {
		return
	}

	images, closeFiles, err := formFiles(r, "images")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid image upload", h.logger)
		return
	}
	defer closeFiles()

	product, err := h.service.Create(r.Context(), req, images)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// GetAll handles GET /products.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.GetAll(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to retrieve products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /products/{id}.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id", h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Search handles GET /products/search?name=. An empty term returns the whole
// catalogue.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.SearchByName(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to search products", h.logger)
		return
	}

	if products == nil {
		products = []model.Product{}
	}

	writeJSON(w, http.StatusOK, products)
}

// Paginate handles GET /products/pagination?page=&limit=.
func (h *ProductHandler) Paginate(w http.ResponseWriter, r *http.Request) {
	page, limit, ok := h.parsePagination(w, r)
	if !ok {
		return
	}

	result, err := h.service.Paginate(r.Context(), page, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to paginate products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ByCategory handles POST /products/category?page=&limit=. The category id
// travels in the body, pagination in the query, as the original API had it.
func (h *ProductHandler) ByCategory(w http.ResponseWriter, r *http.Request) {
	var req model.ProductsByCategoryRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	page, limit, ok := h.parsePagination(w, r)
	if !ok {
		return
	}

	result, err := h.service.PaginateByCategory(r.Context(), req.CategoryID, page, limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to paginate products", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// Update handles PUT /products/{id}. New images replace the stored set;
// omitting them keeps it.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id", h.logger)
		return
	}

	req, ok := h.parseProductForm(w, r)
	if !ok {
		return
	}

	images, closeFiles, err := formFiles(r, "images")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid image upload", h.logger)
		return
	}
	defer closeFiles()

	product, err := h.service.Update(r.Context(), id, req, images)
	if err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /products/{id}.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id", h.logger)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.SuccessResponse{Success: "Product and its images deleted successfully"})
}

// DeleteMany handles DELETE /products with an id list body.
func (h *ProductHandler) DeleteMany(w http.ResponseWriter, r *http.Request) {
	var req model.DeleteProductsRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "no product IDs provided", h.logger)
		return
	}

	if err := h.service.DeleteMany(r.Context(), req.IDs); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.SuccessResponse{Success: "Products deleted successfully"})
}

// DeleteAll handles DELETE /products/delete-all.
func (h *ProductHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteAll(r.Context()); err != nil {
		writeDomainError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.SuccessResponse{Success: "All products and associated images deleted successfully"})
}

// parseProductForm reads the multipart scalar fields shared by create and
// update. It writes the error response itself on failure.
func (h *ProductHandler) parseProductForm(w http.ResponseWriter, r *http.Request) (*model.ProductRequest, bool) {
	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart body", h.logger)
		return nil, false
	}

	price, err := strconv.ParseFloat(r.FormValue("price"), 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid price", h.logger)
		return nil, false
	}

	categoryID, err := uuid.Parse(r.FormValue("category"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid category id", h.logger)
		return nil, false
	}

	req := &model.ProductRequest{
		Name:        r.FormValue("name"),
		Price:       price,
		Description: r.FormValue("description"),
		CategoryID:  categoryID,
	}

	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid product fields", h.logger)
		return nil, false
	}

	return req, true
}

// parsePagination reads page and limit query parameters with defaults.
func (h *ProductHandler) parsePagination(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	page := 1
	limit := 10

	if raw := r.URL.Query().Get("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid page parameter", h.logger)
			return 0, 0, false
		}
		page = parsed
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit parameter", h.logger)
			return 0, 0, false
		}
		limit = parsed
	}

	return page, limit, true
}
