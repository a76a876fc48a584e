package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"catalogapi/internal/api/shared"
	"catalogapi/internal/platform/logger"
	"catalogapi/internal/redact"
	"catalogapi/internal/service"
)

// ProductHandler handles product-related HTTP requests.
type ProductHandler struct {
	productService service.ProductService
	logger         *slog.Logger
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService service.ProductService, logger *slog.Logger) *ProductHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ProductHandler")
	}

	return &ProductHandler{
		productService: productService,
		logger:         logger.With(slog.String("component", "product_handler")),
	}
}

// List handles GET /products requests.
// Optional offset/limit query parameters page through the catalog;
// omitted or invalid values fall back to the service defaults.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	offset := parseIntQuery(r, "offset", 0)
	limit := parseIntQuery(r, "limit", 0)

	products, err := h.productService.List(r.Context(), offset, limit)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to list products", err)
		return
	}

	log.Debug("listed products", slog.Int("count", len(products)))
	shared.RespondWithPayload(w, r, http.StatusOK, productsToResponse(products))
}

// Get handles GET /products/{id} requests.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.pathProductID(w, r, log)
	if !ok {
		return
	}

	product, err := h.productService.Get(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithPayload(w, r, http.StatusOK, productToResponse(product))
}

// Search handles GET /products/search/{term} requests.
// The term is matched case-insensitively as a literal substring of the
// product name. An empty result set is a successful, empty payload.
func (h *ProductHandler) Search(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	term := chi.URLParam(r, "term")
	if term == "" {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Search term is required")
		return
	}

	products, err := h.productService.Search(r.Context(), term)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			http.StatusInternalServerError, "Failed to search products", err)
		return
	}

	log.Debug("searched products", slog.Int("count", len(products)))
	shared.RespondWithPayload(w, r, http.StatusOK, productsToResponse(products))
}

// Create handles POST /products requests.
// The owner is always the authenticated user; any owner in the body is
// ignored. Validation failures are reported before anything is persisted.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	userID, ok := h.contextUserID(w, r, log)
	if !ok {
		return
	}

	params, ok := h.decodeProductRequest(w, r, log)
	if !ok {
		return
	}

	product, err := h.productService.Create(r.Context(), userID, params)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("created product",
		slog.String("product_id", product.ID.String()),
		slog.String("user_id", userID.String()))
	shared.RespondWithPayload(w, r, http.StatusCreated, productToResponse(product))
}

// Update handles PUT /products/{id} requests.
// The body carries the full replacement for the product's mutable fields.
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.pathProductID(w, r, log)
	if !ok {
		return
	}

	params, ok := h.decodeProductRequest(w, r, log)
	if !ok {
		return
	}

	product, err := h.productService.Update(r.Context(), id, params)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("updated product", slog.String("product_id", id.String()))
	shared.RespondWithPayload(w, r, http.StatusOK, productToResponse(product))
}

// Delete handles DELETE /products/{id} requests.
// The response carries the deleted record.
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.pathProductID(w, r, log)
	if !ok {
		return
	}

	product, err := h.productService.Delete(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r,
			MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("deleted product", slog.String("product_id", id.String()))
	shared.RespondWithPayload(w, r, http.StatusOK, productToResponse(product))
}

// contextUserID extracts the authenticated user's UUID from the request
// context, writing a 401 envelope if it is absent.
func (h *ProductHandler) contextUserID(
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		log.Warn("user ID not found or invalid in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "User ID not found or invalid")
		return uuid.Nil, false
	}
	return userID, true
}

// pathProductID extracts and parses the {id} path parameter, writing a 400
// envelope on a missing or malformed value.
func (h *ProductHandler) pathProductID(
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
) (uuid.UUID, bool) {
	pathID := chi.URLParam(r, "id")
	if pathID == "" {
		log.Warn("product ID not found in URL path")
		shared.RespondWithError(w, r, http.StatusBadRequest, "Product ID is required")
		return uuid.Nil, false
	}

	id, err := uuid.Parse(pathID)
	if err != nil {
		log.Warn("invalid product ID format", slog.String("product_id", pathID))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid product ID format")
		return uuid.Nil, false
	}

	return id, true
}

// decodeProductRequest decodes and validates a create/update body, writing
// the appropriate failure envelope when the body is malformed or invalid.
func (h *ProductHandler) decodeProductRequest(
	w http.ResponseWriter,
	r *http.Request,
	log *slog.Logger,
) (service.ProductParams, bool) {
	var req ProductRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return service.ProductParams{}, false
	}

	if err := shared.Validate.Struct(req); err != nil {
		log.Warn("validation error", slog.String("error", redact.Error(err)))
		shared.RespondWithViolations(w, r, shared.ViolationsFromError(err))
		return service.ProductParams{}, false
	}

	// The uuid tag guarantees this parse succeeds.
	categoryID, err := uuid.Parse(req.CategoryID)
	if err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid category ID format")
		return service.ProductParams{}, false
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}

	return service.ProductParams{
		Name:        req.Name,
		CategoryID:  categoryID,
		Price:       *req.Price,
		Description: req.Description,
		Available:   available,
	}, true
}

// parseIntQuery reads an integer query parameter, returning fallback for
// missing or non-numeric values.
func parseIntQuery(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
