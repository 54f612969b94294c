package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"flavors/backend/internal/httpapi/middleware"
	"flavors/backend/internal/httpapi/response"
	"flavors/backend/internal/models"
	"github.com/go-chi/chi/v5"
)

const flavorNotFound = "Flavor not found"

// FlavorStore is the data access the flavor routes depend on.
type FlavorStore interface {
	List(ctx context.Context) ([]models.Flavor, error)
	Get(ctx context.Context, id uint) (*models.Flavor, error)
	Create(ctx context.Context, name *string, isFavorite *bool) (*models.Flavor, error)
	Update(ctx context.Context, id uint, name *string, isFavorite *bool) (*models.Flavor, error)
	Delete(ctx context.Context, id uint) error
}

type FlavorHandler struct {
	Store FlavorStore
}

func NewFlavorHandler(store FlavorStore) *FlavorHandler {
	return &FlavorHandler{Store: store}
}

// flavorRequest is the body of POST and PUT. Fields left out arrive as nil
// and are written as NULL. Values are kept raw so scalars of another JSON type
// are converted the way the columns would convert their text.
type flavorRequest struct {
	Name       json.RawMessage `json:"name"`
	IsFavorite json.RawMessage `json:"is_favorite"`
}

func (req flavorRequest) values() (*string, *bool, error) {
	name, err := textValue(req.Name)
	if err != nil {
		return nil, nil, err
	}
	isFavorite, err := boolValue(req.IsFavorite)
	if err != nil {
		return nil, nil, err
	}
	return name, isFavorite, nil
}

func (h *FlavorHandler) List(w http.ResponseWriter, r *http.Request) {
	flavors, err := h.Store.List(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.JSON(w, http.StatusOK, flavors)
}

// Get answers 200 with an error body when the row does not exist.
func (h *FlavorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathIDParam(chi.URLParam(r, "flavorID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if id < 1 {
		response.Message(w, http.StatusOK, flavorNotFound)
		return
	}

	flavor, err := h.Store.Get(r.Context(), uint(id))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if flavor == nil {
		response.Message(w, http.StatusOK, flavorNotFound)
		return
	}
	response.JSON(w, http.StatusOK, flavor)
}

func (h *FlavorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req flavorRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Error(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	name, isFavorite, err := req.values()
	if err != nil {
		h.fail(w, r, err)
		return
	}

	flavor, err := h.Store.Create(r.Context(), name, isFavorite)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	response.JSON(w, http.StatusCreated, flavor)
}

// Update answers 200 with an error body when the row does not exist.
func (h *FlavorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathIDParam(chi.URLParam(r, "flavorID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}

	var req flavorRequest
	if err := response.DecodeJSON(r, &req); err != nil {
		response.Error(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	name, isFavorite, err := req.values()
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if id < 1 {
		response.Message(w, http.StatusOK, flavorNotFound)
		return
	}

	flavor, err := h.Store.Update(r.Context(), uint(id), name, isFavorite)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if flavor == nil {
		response.Message(w, http.StatusOK, flavorNotFound)
		return
	}
	response.JSON(w, http.StatusOK, flavor)
}

// Delete always answers 204; a missing row is not reported.
func (h *FlavorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parsePathIDParam(chi.URLParam(r, "flavorID"))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if id < 1 {
		response.NoContent(w)
		return
	}

	if err := h.Store.Delete(r.Context(), uint(id)); err != nil {
		h.fail(w, r, err)
		return
	}
	response.NoContent(w)
}

// fail is the single error path for the flavor routes.
func (h *FlavorHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("request %s %s failed [%s]: %v", r.Method, r.URL.Path, middleware.GetRequestID(r.Context()), err)
	response.ErrorWithDetails(w, r, http.StatusInternalServerError, "internal server error", err.Error())
}
