package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/jaekwang-park/compliance-api/internal/middleware"
	"github.com/jaekwang-park/compliance-api/internal/service"
)

type ChecklistHandler struct {
	svc     *service.ChecklistService
	itemSvc *service.ItemService
}

func NewChecklistHandler(svc *service.ChecklistService, itemSvc *service.ItemService) *ChecklistHandler {
	return &ChecklistHandler{svc: svc, itemSvc: itemSvc}
}

// ServeHTTP routes /api/v1/checklists, /api/v1/checklists/{id} and the
// {id}/items and {id}/stats sub-resources.
func (h *ChecklistHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/checklists")
	path = strings.TrimPrefix(path, "/")

	parts := strings.SplitN(path, "/", 2)
	checklistID := parts[0]
	subPath := ""
	if len(parts) > 1 {
		subPath = strings.TrimRight(parts[1], "/")
	}

	if checklistID != "" && subPath == "items" {
		switch r.Method {
		case http.MethodGet:
			h.handleListItems(w, r, checklistID)
		case http.MethodPost:
			h.handleCreateItem(w, r, checklistID)
		default:
			WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
		}
		return
	}

	if checklistID != "" && subPath == "stats" {
		if r.Method != http.MethodGet {
			WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
			return
		}
		h.handleStats(w, r, checklistID)
		return
	}

	if checklistID != "" {
		switch r.Method {
		case http.MethodGet:
			h.handleGetByID(w, r, checklistID)
		case http.MethodPut:
			h.handleUpdate(w, r, checklistID)
		case http.MethodDelete:
			h.handleDelete(w, r, checklistID)
		default:
			WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
		}
		return
	}

	switch r.Method {
	case http.MethodGet:
		h.handleList(w, r)
	case http.MethodPost:
		h.handleCreate(w, r)
	default:
		WriteError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	}
}

type createChecklistRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (h *ChecklistHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID := getUserID(r)

	var req createChecklistRequest
	if err := decodeStrict(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	checklist, err := h.svc.Create(r.Context(), userID, service.CreateChecklistInput{
		Name:        req.Name,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	ownerUsername, err := h.svc.OwnerUsername(r.Context(), checklist.OwnerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, newChecklistResponse(checklist, nil, ownerUsername, true))
}

func (h *ChecklistHandler) handleGetByID(w http.ResponseWriter, r *http.Request, checklistID string) {
	userID := getUserID(r)

	checklist, err := h.svc.GetByIDForOwner(r.Context(), userID, checklistID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	items, err := h.svc.Items(r.Context(), checklistID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	ownerUsername, err := h.svc.OwnerUsername(r.Context(), checklist.OwnerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, newChecklistResponse(checklist, items, ownerUsername, true))
}

type updateChecklistRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	Status      *string `json:"status,omitempty"`
}

func (h *ChecklistHandler) handleUpdate(w http.ResponseWriter, r *http.Request, checklistID string) {
	userID := getUserID(r)

	var req updateChecklistRequest
	if err := decodeStrict(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	checklist, err := h.svc.Update(r.Context(), userID, checklistID, service.UpdateChecklistInput{
		Name:        req.Name,
		Description: req.Description,
		DueDate:     req.DueDate,
		Status:      req.Status,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	items, err := h.svc.Items(r.Context(), checklistID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	ownerUsername, err := h.svc.OwnerUsername(r.Context(), checklist.OwnerID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, newChecklistResponse(checklist, items, ownerUsername, true))
}

func (h *ChecklistHandler) handleDelete(w http.ResponseWriter, r *http.Request, checklistID string) {
	userID := getUserID(r)

	if err := h.svc.Delete(r.Context(), userID, checklistID); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *ChecklistHandler) handleList(w http.ResponseWriter, r *http.Request) {
	userID := getUserID(r)

	checklists, err := h.svc.ListForOwner(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	// Every row belongs to the requester, so one lookup covers the list
	ownerUsername, err := h.svc.OwnerUsername(r.Context(), userID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responses := make([]checklistResponse, 0, len(checklists))
	for _, checklist := range checklists {
		items, err := h.svc.Items(r.Context(), checklist.ID)
		if err != nil {
			handleServiceError(w, err)
			return
		}
		responses = append(responses, newChecklistResponse(checklist, items, ownerUsername, false))
	}

	WriteJSON(w, http.StatusOK, map[string]any{"checklists": responses})
}

func (h *ChecklistHandler) handleListItems(w http.ResponseWriter, r *http.Request, checklistID string) {
	items, err := h.svc.Items(r.Context(), checklistID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"items": newItemResponses(items)})
}

type createItemRequest struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Status        *string `json:"status,omitempty"`
	AssignedOwner string  `json:"assigned_owner"`
	EvidenceNotes string  `json:"evidence_notes"`
}

func (h *ChecklistHandler) handleCreateItem(w http.ResponseWriter, r *http.Request, checklistID string) {
	var req createItemRequest
	if err := decodeStrict(r, &req); err != nil {
		WriteError(w, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
		return
	}

	item, err := h.itemSvc.Create(r.Context(), checklistID, service.CreateItemInput{
		Title:         req.Title,
		Description:   req.Description,
		Status:        req.Status,
		AssignedOwner: req.AssignedOwner,
		EvidenceNotes: req.EvidenceNotes,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, newItemResponse(item))
}

func (h *ChecklistHandler) handleStats(w http.ResponseWriter, r *http.Request, checklistID string) {
	stats, err := h.svc.Stats(r.Context(), checklistID)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, stats)
}

func getUserID(r *http.Request) string {
	return middleware.GetUserID(r)
}

// decodeStrict decodes a JSON body rejecting fields the payload type doesn't
// declare, so disallowed update fields fail loudly instead of being dropped.
func decodeStrict(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func handleServiceError(w http.ResponseWriter, err error) {
	var vErr *service.ValidationError
	switch {
	case errors.Is(err, service.ErrNotFound):
		WriteError(w, http.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.As(err, &vErr):
		WriteFieldError(w, http.StatusBadRequest, "VALIDATION_ERROR", vErr.Message, vErr.Field)
	case errors.Is(err, service.ErrInvalidInput):
		WriteError(w, http.StatusBadRequest, "INVALID_INPUT", err.Error())
	case errors.Is(err, service.ErrForbidden):
		WriteError(w, http.StatusForbidden, "FORBIDDEN", "access denied")
	default:
		WriteError(w, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}
