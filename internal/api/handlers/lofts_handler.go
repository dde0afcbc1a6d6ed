package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/loftbook/engine/internal/api/types"
	"github.com/loftbook/engine/internal/api/validators"
	"github.com/loftbook/engine/internal/services"
)

type LoftsHandler struct {
	lofts services.LoftService
}

func NewLoftsHandler(lofts services.LoftService) *LoftsHandler {
	return &LoftsHandler{lofts: lofts}
}

func (h *LoftsHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := currentUserID(r)
	if !ok {
		writeUnauthorized(w)
		return
	}
	items, err := h.lofts.ListLofts(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: items, Meta: &types.Meta{Total: int64(len(items))}})
}

func (h *LoftsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := currentUserID(r)
	if !ok {
		writeUnauthorized(w)
		return
	}
	var req types.LoftCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}
	l, err := h.lofts.CreateLoft(r.Context(), ownerID, req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: l})
}

func (h *LoftsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := currentUserID(r)
	if !ok {
		writeUnauthorized(w)
		return
	}
	loftID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid loft id")
		return
	}
	l, birds, err := h.lofts.GetLoft(r.Context(), loftID, ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: map[string]any{
		"loft":  l,
		"birds": birds,
	}})
}

func (h *LoftsHandler) Rename(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := currentUserID(r)
	if !ok {
		writeUnauthorized(w)
		return
	}
	loftID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid loft id")
		return
	}
	var req types.LoftRenameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}
	l, err := h.lofts.RenameLoft(r.Context(), loftID, ownerID, req.Name)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: l})
}

func (h *LoftsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := currentUserID(r)
	if !ok {
		writeUnauthorized(w)
		return
	}
	loftID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid loft id")
		return
	}
	if err := h.lofts.DeleteLoft(r.Context(), loftID, ownerID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}
