// =============================================================================
// Receipt Generator - HTTP Server
// =============================================================================
//
// This module exposes the generation core over HTTP for UI prototypes:
//
//   POST /receipts/generate  - run one generation call
//   GET  /healthz            - liveness probe
//
// Each request is one self-contained generation: the catalog arrives in the
// request body, results are returned in the response, and nothing is stored
// between calls. Every request gets its own allocator, so concurrent
// requests never share a random stream.
//
// =============================================================================

package transport

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ginjaninja78/receipt-generator/internal/catalog"
	"github.com/ginjaninja78/receipt-generator/internal/generator"
	"github.com/ginjaninja78/receipt-generator/internal/money"
)

// =============================================================================
// SERVER
// =============================================================================

// Server handles HTTP generation requests.
type Server struct {
	currency string
	logger   *zap.Logger
}

// NewServer creates a Server. The currency code is used for amount display
// in responses.
func NewServer(currency string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{
		currency: currency,
		logger:   logger,
	}
}

// Router builds the chi router with logging and recovery middleware.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)

	r.Post("/receipts/generate", s.handleGenerate)
	r.Get("/healthz", s.handleHealthz)

	return r
}

// =============================================================================
// HANDLERS
// =============================================================================

// handleGenerate runs one generation call.
// Precondition violations (empty catalog, non-positive target or receipt
// count, invalid item table) return 400 with the typed error message and
// no partial output.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if len(req.Catalog.Items) == 0 {
		writeError(w, http.StatusBadRequest, generator.NewInvalidCatalogError().Error())
		return
	}

	if verrs := catalog.ValidateItems(req.Catalog.Items); len(verrs) > 0 {
		details := make([]string, len(verrs))
		for i, ve := range verrs {
			details[i] = ve.Error()
		}
		writeError(w, http.StatusBadRequest, "catalog validation failed", details...)
		return
	}

	cat, err := catalog.New(req.Catalog.Items)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var opts []generator.Option
	if req.Seed != nil && *req.Seed != 0 {
		opts = append(opts, generator.WithSeed(*req.Seed))
	}

	alloc, err := generator.New(cat, opts...)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	res, err := alloc.Generate(req.TargetAmount, req.ReceiptCount)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp := s.toGenerateResponse(res)
	s.logger.Info("generated receipts",
		zap.String("run_id", resp.RunID),
		zap.Int("receipt_count", resp.ReceiptCount),
		zap.Int("purchase_events", res.EventCount),
		zap.Int64("realized_total", res.RealizedTotal),
	)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// handleHealthz reports liveness.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// =============================================================================
// RESPONSE MAPPING
// =============================================================================

// toGenerateResponse builds the wire response from a generation result.
func (s *Server) toGenerateResponse(res generator.Result) GenerateResponse {
	receipts := make([]ReceiptResponse, len(res.Receipts))
	for i, receipt := range res.Receipts {
		lineItems := make([]LineItemResponse, len(receipt.LineItems))
		for j, li := range receipt.LineItems {
			lineItems[j] = LineItemResponse{
				Item:      li.Item,
				Quantity:  li.Quantity,
				UnitPrice: money.NewAmount(li.UnitPrice, s.currency),
				LineTotal: money.NewAmount(li.LineTotal(), s.currency),
			}
		}
		receipts[i] = ReceiptResponse{
			ID:        receipt.ID,
			LineItems: lineItems,
			Total:     money.NewAmount(receipt.Total(), s.currency),
		}
	}

	return GenerateResponse{
		RunID:         uuid.New().String(),
		Currency:      s.currency,
		ReceiptCount:  len(res.Receipts),
		RealizedTotal: money.NewAmount(res.RealizedTotal, s.currency),
		Receipts:      receipts,
	}
}

// =============================================================================
// MIDDLEWARE
// =============================================================================

// requestLogger logs one line per request with method, path, status and
// duration.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		s.logger.Info("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
