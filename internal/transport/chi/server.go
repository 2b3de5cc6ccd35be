package chi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	chirouter "github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/raspaai/marketsearch/internal/domain"
	domcat "github.com/raspaai/marketsearch/internal/domain/catalog"
	"github.com/raspaai/marketsearch/internal/domain/geo"
	"github.com/raspaai/marketsearch/internal/domain/search/query"
	"github.com/raspaai/marketsearch/internal/domain/search/result"
	cataloguc "github.com/raspaai/marketsearch/internal/usecase/catalog"
	healthuc "github.com/raspaai/marketsearch/internal/usecase/health"
	searchuc "github.com/raspaai/marketsearch/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// SearchDefaults holds the operator-tunable values applied to search
// parameters the caller leaves unspecified.
type SearchDefaults struct {
	RadiusKm    float64
	PageSize    int
	MaxPageSize int
}

// Server exposes the search and catalog usecases over HTTP.
type Server struct {
	search        *searchuc.Service
	catalog       *cataloguc.Service
	health        *healthuc.Service
	logger        *zap.Logger
	defaults      SearchDefaults
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	search *searchuc.Service,
	catalog *cataloguc.Service,
	health *healthuc.Service,
	logger *zap.Logger,
) *Server {
	s := &Server{
		search:  search,
		catalog: catalog,
		health:  health,
		logger:  logger,
		defaults: SearchDefaults{
			RadiusKm:    geo.DefaultRadiusKm,
			PageSize:    query.DefaultLimit,
			MaxPageSize: query.MaxLimit,
		},
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrShopNotFound, http.StatusNotFound, CodeShopNotFound),
		sentinelHandler(domain.ErrBrandNotFound, http.StatusNotFound, CodeBrandNotFound),
		sentinelHandler(domain.ErrProductNotFound, http.StatusNotFound, CodeProductNotFound),
		sentinelHandler(domain.ErrNotFound, http.StatusNotFound, CodeNotFound),
		sentinelHandler(domain.ErrAlreadyExists, http.StatusConflict, CodeAlreadyExists),
		sentinelHandler(domain.ErrInvalidCoordinates, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrInvalidRadius, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrInvalidRecord, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrComboTooSmall, http.StatusBadRequest, CodeValidationFailed),
	}
	return s
}

// WithSearchDefaults overrides the built-in radius and page size
// defaults, typically from configuration. Zero fields keep the
// built-in values.
func (s *Server) WithSearchDefaults(d SearchDefaults) *Server {
	if d.RadiusKm > 0 {
		s.defaults.RadiusKm = d.RadiusKm
	}
	if d.PageSize > 0 {
		s.defaults.PageSize = d.PageSize
	}
	if d.MaxPageSize > 0 {
		s.defaults.MaxPageSize = d.MaxPageSize
	}
	return s
}

// radiusOrDefault resolves the radius parameter. An explicit
// non-positive radius is rejected rather than silently replaced by
// the default.
func (s *Server) radiusOrDefault(radiusKm *float64) (float64, error) {
	if radiusKm == nil {
		return s.defaults.RadiusKm, nil
	}
	if *radiusKm <= 0 {
		return 0, domain.ErrInvalidRadius
	}
	return *radiusKm, nil
}

// pageOrDefault applies the configured page size and ceiling. A
// non-positive limit counts as unspecified.
func (s *Server) pageOrDefault(limit, offset *int) (int, int) {
	l := s.defaults.PageSize
	if limit != nil && *limit > 0 {
		l = *limit
	}
	if l > s.defaults.MaxPageSize {
		l = s.defaults.MaxPageSize
	}
	return l, derefInt(offset)
}

// Routes registers all API routes on the router.
func (s *Server) Routes(r chirouter.Router) {
	r.Get("/health", s.HealthCheck)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chirouter.Router) {
		r.Get("/search/products", s.SearchProducts)
		r.Get("/search/combos", s.SearchCombos)

		r.Post("/shops", s.CreateShop)
		r.Put("/shops/{shopID}", s.UpdateShop)
		r.Get("/shops/{shopID}/products", s.ShopProducts)
		r.Get("/shops/{shopID}/combos", s.ShopCombos)
		r.Post("/shops/{shopID}/listings", s.CreateListing)
		r.Put("/shops/{shopID}/listings/{listingID}", s.UpdateListing)
		r.Delete("/shops/{shopID}/listings/{listingID}", s.DeleteListing)
		r.Post("/shops/{shopID}/combos", s.CreateCombo)

		r.Post("/brands", s.CreateBrand)
		r.Get("/brands/{brandID}/products", s.BrandProducts)

		r.Post("/products", s.CreateProduct)
	})
}

// SearchProducts handles GET /api/v1/search/products.
func (s *Server) SearchProducts(w http.ResponseWriter, r *http.Request) {
	params, err := bindGeoSearchParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	radius, err := s.radiusOrDefault(params.RadiusKm)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	limit, offset := s.pageOrDefault(params.Limit, params.Offset)

	q, err := query.NewGeo(
		derefStr(params.Phrase), params.Lat, params.Lng, radius,
		derefStr(params.ShopName), limit, offset,
	)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	hits, total, err := s.search.ProductSearch(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse(hits, total, q))
}

// SearchCombos handles GET /api/v1/search/combos.
func (s *Server) SearchCombos(w http.ResponseWriter, r *http.Request) {
	params, err := bindGeoSearchParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	radius, err := s.radiusOrDefault(params.RadiusKm)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	limit, offset := s.pageOrDefault(params.Limit, params.Offset)

	q, err := query.NewGeo(
		derefStr(params.Phrase), params.Lat, params.Lng, radius,
		derefStr(params.ShopName), limit, offset,
	)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	hits, total, err := s.search.ComboSearch(r.Context(), q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse(hits, total, q))
}

// ShopProducts handles GET /api/v1/shops/{shopID}/products.
func (s *Server) ShopProducts(w http.ResponseWriter, r *http.Request) {
	shopID := chirouter.URLParam(r, "shopID")

	params, err := bindScopedSearchParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	limit, offset := s.pageOrDefault(params.Limit, params.Offset)
	q, err := query.NewScoped(derefStr(params.Phrase), limit, offset)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	hits, total, err := s.search.ShopProducts(r.Context(), shopID, q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse(hits, total, q))
}

// ShopCombos handles GET /api/v1/shops/{shopID}/combos.
func (s *Server) ShopCombos(w http.ResponseWriter, r *http.Request) {
	shopID := chirouter.URLParam(r, "shopID")

	params, err := bindScopedSearchParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	limit, offset := s.pageOrDefault(params.Limit, params.Offset)
	q, err := query.NewScoped(derefStr(params.Phrase), limit, offset)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	hits, total, err := s.search.ShopCombos(r.Context(), shopID, q)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse(hits, total, q))
}

// BrandProducts handles GET /api/v1/brands/{brandID}/products.
func (s *Server) BrandProducts(w http.ResponseWriter, r *http.Request) {
	brandID := chirouter.URLParam(r, "brandID")

	params, err := bindScopedSearchParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, err.Error())
		return
	}

	limit, offset := s.pageOrDefault(params.Limit, params.Offset)
	q, err := query.NewScoped(derefStr(params.Phrase), limit, offset)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	hits, total, err := s.search.BrandProducts(r.Context(), brandID, q, derefBool(params.ServicesOnly))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, searchResponse(hits, total, q))
}

// CreateShop handles POST /api/v1/shops.
func (s *Server) CreateShop(w http.ResponseWriter, r *http.Request) {
	var req ShopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	shop, err := s.catalog.RegisterShop(r.Context(), cataloguc.ShopInput{
		Title: req.Title, Username: req.Username,
		Lat: req.Lat, Lng: req.Lng, Active: req.Active,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/shops/%s", shop.ID()))
	writeJSON(w, http.StatusCreated, shopToResponse(shop))
}

// UpdateShop handles PUT /api/v1/shops/{shopID}.
func (s *Server) UpdateShop(w http.ResponseWriter, r *http.Request) {
	shopID := chirouter.URLParam(r, "shopID")

	var req ShopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	shop, err := s.catalog.UpdateShop(r.Context(), shopID, cataloguc.ShopInput{
		Title: req.Title, Username: req.Username,
		Lat: req.Lat, Lng: req.Lng, Active: req.Active,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, shopToResponse(shop))
}

// CreateBrand handles POST /api/v1/brands.
func (s *Server) CreateBrand(w http.ResponseWriter, r *http.Request) {
	var req BrandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	brand, err := s.catalog.RegisterBrand(r.Context(), cataloguc.BrandInput{
		Title: req.Title, Username: req.Username, Active: req.Active,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/brands/%s", brand.ID()))
	writeJSON(w, http.StatusCreated, BrandResponse{
		ID: brand.ID(), Title: brand.Title(), Username: brand.Username(), Active: brand.Active(),
	})
}

// CreateProduct handles POST /api/v1/products.
func (s *Server) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	p, err := s.catalog.RegisterProduct(r.Context(), cataloguc.ProductInput{
		Title: req.Title, Description: req.Description, BrandID: req.BrandID,
		Unit: req.Unit, MRP: req.MRP, IsService: req.IsService,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/products/%s", p.ID()))
	writeJSON(w, http.StatusCreated, productToResponse(p))
}

// CreateListing handles POST /api/v1/shops/{shopID}/listings.
func (s *Server) CreateListing(w http.ResponseWriter, r *http.Request) {
	shopID := chirouter.URLParam(r, "shopID")

	var req ListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	sp, err := s.catalog.CreateListing(r.Context(), cataloguc.ListingInput{
		ShopID: shopID, ProductID: req.ProductID, OfferedPrice: req.OfferedPrice,
		InStock: req.InStock, Available: req.Available,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/shops/%s/listings/%s", shopID, sp.ID()))
	writeJSON(w, http.StatusCreated, listingToResponse(sp))
}

// UpdateListing handles PUT /api/v1/shops/{shopID}/listings/{listingID}.
func (s *Server) UpdateListing(w http.ResponseWriter, r *http.Request) {
	shopID := chirouter.URLParam(r, "shopID")
	listingID := chirouter.URLParam(r, "listingID")

	var req ListingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	sp, err := s.catalog.UpdateListing(r.Context(), listingID, cataloguc.ListingInput{
		ShopID: shopID, ProductID: req.ProductID, OfferedPrice: req.OfferedPrice,
		InStock: req.InStock, Available: req.Available,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, listingToResponse(sp))
}

// DeleteListing handles DELETE /api/v1/shops/{shopID}/listings/{listingID}.
func (s *Server) DeleteListing(w http.ResponseWriter, r *http.Request) {
	shopID := chirouter.URLParam(r, "shopID")
	listingID := chirouter.URLParam(r, "listingID")

	if err := s.catalog.RemoveListing(r.Context(), shopID, listingID); err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// CreateCombo handles POST /api/v1/shops/{shopID}/combos.
func (s *Server) CreateCombo(w http.ResponseWriter, r *http.Request) {
	shopID := chirouter.URLParam(r, "shopID")

	var req ComboRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	c, err := s.catalog.CreateCombo(r.Context(), cataloguc.ComboInput{
		ShopID: shopID, Name: req.Name, Description: req.Description,
		OfferedPrice: req.OfferedPrice, Available: req.Available, ListingIDs: req.ListingIDs,
	})
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1/shops/%s/combos/%s", shopID, c.ID()))
	writeJSON(w, http.StatusCreated, comboToResponse(c))
}

// HealthCheck handles GET /health.
func (s *Server) HealthCheck(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	checks := make(map[string]string, len(report.Checks))
	for k, v := range report.Checks {
		checks[k] = string(v)
	}

	httpStatus := http.StatusOK
	if report.Status != healthuc.Healthy {
		httpStatus = http.StatusServiceUnavailable
	}

	writeJSON(w, httpStatus, HealthResponse{
		Status: string(report.Status),
		Checks: checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a sentinel error message for the client without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrShopNotFound,
		domain.ErrBrandNotFound,
		domain.ErrProductNotFound,
		domain.ErrNotFound,
		domain.ErrAlreadyExists,
		domain.ErrInvalidCoordinates,
		domain.ErrInvalidRadius,
		domain.ErrInvalidRecord,
		domain.ErrComboTooSmall,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}

func searchResponse(hits []result.Hit, total int, q query.Query) SearchResultListResponse {
	items := make([]SearchResultItem, len(hits))
	for i := range hits {
		items[i] = hitToItem(&hits[i])
	}
	return SearchResultListResponse{
		Items:  items,
		Total:  total,
		Limit:  q.Limit(),
		Offset: q.Offset(),
	}
}

func hitToItem(h *result.Hit) SearchResultItem {
	item := SearchResultItem{
		ID:     h.ID(),
		Kind:   string(h.Kind()),
		ShopID: h.ShopID(),
		Title:  h.Title(),
		Price:  h.Price(),
		Score:  h.Score(),
	}
	if h.ProductID() != "" {
		item.ProductID = h.ProductID()
	}
	if !h.CreatedAt().IsZero() {
		t := h.CreatedAt()
		item.CreatedAt = &t
	}
	return item
}

func shopToResponse(shop domcat.Shop) ShopResponse {
	loc := shop.Location()
	return ShopResponse{
		ID:       shop.ID(),
		Title:    shop.Title(),
		Username: shop.Username(),
		Lat:      loc.Lat(),
		Lng:      loc.Lng(),
		Active:   shop.Active(),
	}
}

func productToResponse(p domcat.Product) ProductResponse {
	return ProductResponse{
		ID:          p.ID(),
		Title:       p.Title(),
		Description: p.Description(),
		BrandID:     p.BrandID(),
		Unit:        p.Unit(),
		MRP:         p.MRP(),
		IsService:   p.IsService(),
	}
}

func listingToResponse(sp domcat.ShopProduct) ListingResponse {
	return ListingResponse{
		ID:           sp.ID(),
		ShopID:       sp.ShopID(),
		ProductID:    sp.ProductID(),
		OfferedPrice: sp.OfferedPrice(),
		InStock:      sp.InStock(),
		Available:    sp.Available(),
		CreatedAt:    sp.CreatedAt(),
	}
}

func comboToResponse(c domcat.Combo) ComboResponse {
	return ComboResponse{
		ID:           c.ID(),
		ShopID:       c.ShopID(),
		Name:         c.Name(),
		Description:  c.Description(),
		OfferedPrice: c.OfferedPrice(),
		Available:    c.Available(),
		ListingIDs:   c.ListingIDs(),
		CreatedAt:    c.CreatedAt(),
	}
}
