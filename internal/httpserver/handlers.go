package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	productdomain "catalog/backend/internal/domain/product"
	productusecase "catalog/backend/internal/usecase/product"

	"github.com/google/uuid"
)

func (s *Server) registerRoutes() {
	s.router.Handle("/health", http.HandlerFunc(s.handleHealth))
	s.router.Handle("/products", http.HandlerFunc(s.handleProducts))
	s.router.Handle("/products/", http.HandlerFunc(s.handleProductByID))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slog.With("request_id", requestIDFromContext(ctx))

	switch r.Method {
	case http.MethodGet:
		items, err := s.productService.List(ctx)
		if err != nil {
			log.Error("failed to list products", "err", err)
			writeError(w, http.StatusInternalServerError, "internal error", err.Error())
			return
		}
		if len(items) == 0 {
			// Empty-catalog marker: 200 transport status, 204 business code.
			writeJSON(w, http.StatusOK, apiResponse{Code: http.StatusNoContent, Message: "no products found"})
			return
		}
		writeResponse(w, http.StatusOK, "products listed", items)
	case http.MethodPost:
		var payload productusecase.Input
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON payload")
			return
		}

		product, err := s.productService.ConvertAndSanitize(payload)
		if err != nil {
			var vErr *productdomain.ValidationError
			if errors.As(err, &vErr) {
				log.Warn("product rejected by validation", "reason", vErr.Reason)
				writeError(w, http.StatusBadRequest, "invalid product data", vErr.Reason)
				return
			}
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		created, err := s.productService.Create(ctx, product)
		if err != nil {
			if errors.Is(err, productdomain.ErrDuplicateCode) {
				log.Warn("duplicate product code", "code", product.Code)
				writeError(w, http.StatusConflict, err.Error())
				return
			}
			log.Error("failed to create product", "err", err)
			writeError(w, http.StatusInternalServerError, "internal error", err.Error())
			return
		}

		log.Info("product created", "id", created.ID, "code", created.Code)
		writeResponse(w, http.StatusCreated, "product created", created)
	default:
		writeMethodNotAllowed(w, http.MethodGet, http.MethodPost)
	}
}

func (s *Server) handleProductByID(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/products/")
	if id == "" {
		writeError(w, http.StatusBadRequest, "product id required")
		return
	}
	// Shape check only; business rules stay in the validator.
	if _, err := uuid.Parse(id); err != nil {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	ctx := r.Context()
	log := slog.With("request_id", requestIDFromContext(ctx), "id", id)

	switch r.Method {
	case http.MethodGet:
		item, err := s.productService.Get(ctx, id)
		if err != nil {
			if errors.Is(err, productdomain.ErrNotFound) {
				writeError(w, http.StatusNotFound, err.Error())
			} else {
				log.Error("failed to fetch product", "err", err)
				writeError(w, http.StatusInternalServerError, "internal error", err.Error())
			}
			return
		}
		writeResponse(w, http.StatusOK, "product found", item)
	case http.MethodPut:
		var payload productusecase.Input
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON payload")
			return
		}

		product, err := s.productService.ConvertAndSanitize(payload)
		if err != nil {
			var vErr *productdomain.ValidationError
			if errors.As(err, &vErr) {
				log.Warn("product rejected by validation", "reason", vErr.Reason)
				writeError(w, http.StatusBadRequest, "invalid product data", vErr.Reason)
				return
			}
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		product.ID = id

		updated, err := s.productService.Update(ctx, product)
		if err != nil {
			log.Error("failed to update product", "err", err)
			writeError(w, http.StatusInternalServerError, "internal error", err.Error())
			return
		}
		if !updated {
			writeError(w, http.StatusNotFound, fmt.Sprintf("product with id %s not found", id))
			return
		}

		log.Info("product updated")
		w.WriteHeader(http.StatusNoContent)
	case http.MethodDelete:
		deleted, err := s.productService.Delete(ctx, id)
		if err != nil {
			log.Error("failed to delete product", "err", err)
			writeError(w, http.StatusInternalServerError, "internal error", err.Error())
			return
		}
		if !deleted {
			writeError(w, http.StatusNotFound, fmt.Sprintf("product with id %s not found", id))
			return
		}

		log.Info("product deleted")
		w.WriteHeader(http.StatusNoContent)
	default:
		writeMethodNotAllowed(w, http.MethodGet, http.MethodPut, http.MethodDelete)
	}
}
