package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/jaekwang-park/compliance-api/internal/service"
)

type ItemHandler struct {
	svc *service.ItemService
}

func NewItemHandler(svc *service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

// ServeHTTP routes /api/v1/items/{id} and /api/v1/items/{id}/complete.
func (h *ItemHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/items")
	path = strings.TrimPrefix(path, "/")

	parts := strings.SplitN(path, "/", 2)
	itemID := parts[0]
	subPath := ""
	if len(parts) > 1 {
		subPath = strings.TrimRight(parts[1], "/")
	}

	if itemID == "" {
		WriteError(w, http.StatusNotFound, "NOT_FOUND", "endpoint not found")
		return
	}

	if subPath == "complete" {
		if r.Method != http.MethodPost {
			WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
			return
		}
		h.handleComplete(w, r, itemID)
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleGetByID(w, r, itemID)
	case http.MethodPut:
		h.handleUpdate(w, r, itemID)
	case http.MethodDelete:
		h.handleDelete(w, r, itemID)
	default:
		WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	}
}

func (h *ItemHandler) handleGetByID(w http.ResponseWriter, r *http.Request, itemID string) {
	item, err := h.svc.GetByID(r.Context(), itemID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, newItemResponse(item))
}

type updateItemRequest struct {
	Title         *string    `json:"title,omitempty"`
	Description   *string    `json:"description,omitempty"`
	Status        *string    `json:"status,omitempty"`
	AssignedOwner *string    `json:"assigned_owner,omitempty"`
	EvidenceNotes *string    `json:"evidence_notes,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

func (h *ItemHandler) handleUpdate(w http.ResponseWriter, r *http.Request, itemID string) {
	var req updateItemRequest
	if err := decodeStrict(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	item, err := h.svc.Update(r.Context(), itemID, service.UpdateItemInput{
		Title:         req.Title,
		Description:   req.Description,
		Status:        req.Status,
		AssignedOwner: req.AssignedOwner,
		EvidenceNotes: req.EvidenceNotes,
		CompletedAt:   req.CompletedAt,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, newItemResponse(item))
}

type completeItemRequest struct {
	EvidenceNotes *string `json:"evidence_notes,omitempty"`
}

func (h *ItemHandler) handleComplete(w http.ResponseWriter, r *http.Request, itemID string) {
	// The body is optional for completion without evidence.
	req := completeItemRequest{}
	if r.Body != nil && r.ContentLength != 0 {
		if err := decodeStrict(r, &req); err != nil {
			WriteError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
			return
		}
	}

	item, err := h.svc.Complete(r.Context(), itemID, req.EvidenceNotes)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, newItemResponse(item))
}

func (h *ItemHandler) handleDelete(w http.ResponseWriter, r *http.Request, itemID string) {
	if err := h.svc.Delete(r.Context(), itemID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
