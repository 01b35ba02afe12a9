package server

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/shoplite/catalog/internal/model"
	"github.com/shoplite/catalog/internal/store"
)

const (
	defaultListPage  = 1
	defaultListLimit = 10
	maxListLimit     = 100
)

// invalidPayloadMessage is the single validation message returned for any
// malformed or incomplete product payload.
const invalidPayloadMessage = "name, description and category must be non-empty, " +
	"price must be a non-negative number, and inStock must be a boolean"

type productListResponse struct {
	Total int             `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
	Data  []model.Product `json:"data"`
}

type deleteProductResponse struct {
	Message string          `json:"message"`
	Deleted []model.Product `json:"deleted"`
}

// productRequest is the write payload for Create and Update. Pointer fields
// distinguish absent fields from zero values.
type productRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	InStock     *bool    `json:"inStock"`
}

// toProduct validates the payload and maps it to the domain type. The id is
// left empty; callers set it where relevant.
func (req productRequest) toProduct() (model.Product, bool) {
	if req.Name == nil || strings.TrimSpace(*req.Name) == "" {
		return model.Product{}, false
	}
	if req.Description == nil || strings.TrimSpace(*req.Description) == "" {
		return model.Product{}, false
	}
	if req.Category == nil || strings.TrimSpace(*req.Category) == "" {
		return model.Product{}, false
	}
	if req.Price == nil || *req.Price < 0 {
		return model.Product{}, false
	}
	if req.InStock == nil {
		return model.Product{}, false
	}
	return model.Product{
		Name:        *req.Name,
		Description: *req.Description,
		Price:       *req.Price,
		Category:    *req.Category,
		InStock:     *req.InStock,
	}, true
}

// ---------------------------------------------------------------------------
// Infrastructure handlers
// ---------------------------------------------------------------------------

func (s *Server) handleWelcome(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Welcome to the Product Catalog API. See /api/docs for the API reference.\n"))
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		respondError(w, http.StatusServiceUnavailable, errKindInternal, "store is not reachable")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"service":   "catalog",
		"version":   s.version,
		"commit":    s.commit,
		"buildDate": s.buildDate,
	})
}

func (s *Server) handleOpenAPI(w http.ResponseWriter, _ *http.Request) {
	if len(s.openapiSpec) == 0 {
		respondError(w, http.StatusNotFound, errKindNotFound, "OpenAPI specification is not embedded in this build")
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	_, _ = w.Write(s.openapiSpec)
}

func (s *Server) handleDocs(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(swaggerPage))
}

const swaggerPage = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>Product Catalog API</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({ url: '/api/openapi.yaml', dom_id: '#swagger-ui' });
    </script>
  </body>
</html>`

// ---------------------------------------------------------------------------
// Product handlers
// ---------------------------------------------------------------------------

// handleListProducts returns a page of products, optionally filtered by exact
// category match. total always reflects the full filtered set.
func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parseListPagination(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, errKindValidation, err.Error())
		return
	}

	items, total, err := s.store.List(r.Context(), store.ListOptions{
		Category: r.URL.Query().Get("category"),
		Offset:   (page - 1) * limit,
		Limit:    limit,
	})
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to list products")
		respondError(w, http.StatusInternalServerError, errKindInternal, "an unexpected error occurred")
		return
	}

	respondJSON(w, http.StatusOK, productListResponse{
		Total: total,
		Page:  page,
		Limit: limit,
		Data:  items,
	})
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, err := s.store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, errKindNotFound, fmt.Sprintf("product %q not found", id))
			return
		}
		log.Ctx(r.Context()).Error().Err(err).Str("id", id).Msg("failed to get product")
		respondError(w, http.StatusInternalServerError, errKindInternal, "an unexpected error occurred")
		return
	}

	respondJSON(w, http.StatusOK, p)
}

func (s *Server) handleSearchProducts(w http.ResponseWriter, r *http.Request) {
	term := chi.URLParam(r, "name")

	matches, err := s.store.SearchByName(r.Context(), term)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to search products")
		respondError(w, http.StatusInternalServerError, errKindInternal, "an unexpected error occurred")
		return
	}

	respondJSON(w, http.StatusOK, matches)
}

func (s *Server) handleProductStats(w http.ResponseWriter, r *http.Request) {
	counts, err := s.store.CategoryCounts(r.Context())
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to compute product stats")
		respondError(w, http.StatusInternalServerError, errKindInternal, "an unexpected error occurred")
		return
	}

	respondJSON(w, http.StatusOK, counts)
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, errKindValidation, invalidPayloadMessage)
		return
	}

	p, ok := req.toProduct()
	if !ok {
		respondError(w, http.StatusBadRequest, errKindValidation, invalidPayloadMessage)
		return
	}

	created, err := s.store.Create(r.Context(), p)
	if err != nil {
		log.Ctx(r.Context()).Error().Err(err).Msg("failed to create product")
		respondError(w, http.StatusInternalServerError, errKindInternal, "an unexpected error occurred")
		return
	}

	log.Ctx(r.Context()).Info().Str("id", created.ID).Str("name", created.Name).Msg("product created")
	w.Header().Set("Location", fmt.Sprintf("/api/products/%s", created.ID))
	respondJSON(w, http.StatusCreated, created)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req productRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, errKindValidation, invalidPayloadMessage)
		return
	}

	p, ok := req.toProduct()
	if !ok {
		respondError(w, http.StatusBadRequest, errKindValidation, invalidPayloadMessage)
		return
	}
	p.ID = id

	updated, err := s.store.Update(r.Context(), p)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, errKindNotFound, fmt.Sprintf("product %q not found", id))
			return
		}
		log.Ctx(r.Context()).Error().Err(err).Str("id", id).Msg("failed to update product")
		respondError(w, http.StatusInternalServerError, errKindInternal, "an unexpected error occurred")
		return
	}

	log.Ctx(r.Context()).Info().Str("id", id).Msg("product updated")
	respondJSON(w, http.StatusOK, updated)
}

func (s *Server) handleDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	removed, err := s.store.Delete(r.Context(), id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			respondError(w, http.StatusNotFound, errKindNotFound, fmt.Sprintf("product %q not found", id))
			return
		}
		log.Ctx(r.Context()).Error().Err(err).Str("id", id).Msg("failed to delete product")
		respondError(w, http.StatusInternalServerError, errKindInternal, "an unexpected error occurred")
		return
	}

	log.Ctx(r.Context()).Info().Str("id", id).Msg("product deleted")
	respondJSON(w, http.StatusOK, deleteProductResponse{
		Message: "product deleted",
		Deleted: []model.Product{removed},
	})
}

// parseListPagination reads the page and limit query parameters. Non-numeric
// or non-positive values are rejected; limits above maxListLimit are clamped.
func parseListPagination(r *http.Request) (int, int, error) {
	page := defaultListPage
	limit := defaultListLimit

	if value := strings.TrimSpace(r.URL.Query().Get("page")); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			return 0, 0, fmt.Errorf("invalid page value %q", value)
		}
		page = parsed
	}

	if value := strings.TrimSpace(r.URL.Query().Get("limit")); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil || parsed <= 0 {
			return 0, 0, fmt.Errorf("invalid limit value %q", value)
		}
		if parsed > maxListLimit {
			parsed = maxListLimit
		}
		limit = parsed
	}

	return page, limit, nil
}
