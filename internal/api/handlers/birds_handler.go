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

type BirdsHandler struct {
	birds services.BirdService
}

func NewBirdsHandler(birds services.BirdService) *BirdsHandler {
	return &BirdsHandler{birds: birds}
}

// parseLoftID converts the optional wire value into *uuid.UUID; absent and
// null both mean unassigned.
func parseLoftID(raw *string) (*uuid.UUID, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*raw)
	if err != nil {
		return nil, err
	}
	return &id, nil
}

func (h *BirdsHandler) List(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := currentUserID(r)
	if !ok {
		writeUnauthorized(w)
		return
	}
	items, err := h.birds.ListBirds(r.Context(), ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: items, Meta: &types.Meta{Total: int64(len(items))}})
}

func (h *BirdsHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := currentUserID(r)
	if !ok {
		writeUnauthorized(w)
		return
	}
	var req types.BirdCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}
	loftID, err := parseLoftID(req.LoftID)
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid loft id")
		return
	}

	b, err := h.birds.CreateBird(r.Context(), ownerID, &services.CreateBirdInput{
		Ring:   req.Ring,
		Name:   req.Name,
		LoftID: loftID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, types.APIResponse{Success: true, Data: b})
}

func (h *BirdsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := currentUserID(r)
	if !ok {
		writeUnauthorized(w)
		return
	}
	birdID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid bird id")
		return
	}
	b, err := h.birds.GetBird(r.Context(), birdID, ownerID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: b})
}

func (h *BirdsHandler) Update(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := currentUserID(r)
	if !ok {
		writeUnauthorized(w)
		return
	}
	birdID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid bird id")
		return
	}
	var req types.BirdUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}
	loftID, err := parseLoftID(req.LoftID)
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid loft id")
		return
	}

	b, err := h.birds.UpdateBird(r.Context(), birdID, ownerID, &services.UpdateBirdInput{
		Ring:   req.Ring,
		Name:   req.Name,
		LoftID: loftID,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: b})
}

func (h *BirdsHandler) Assign(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := currentUserID(r)
	if !ok {
		writeUnauthorized(w)
		return
	}
	var req types.BirdAssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}
	birdID, err := uuid.Parse(req.BirdID)
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid bird id")
		return
	}
	loftID, err := parseLoftID(req.LoftID)
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid loft id")
		return
	}

	b, err := h.birds.AssignBird(r.Context(), birdID, ownerID, loftID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: b})
}

func (h *BirdsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := currentUserID(r)
	if !ok {
		writeUnauthorized(w)
		return
	}
	birdID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid bird id")
		return
	}
	if err := h.birds.DeleteBird(r.Context(), birdID, ownerID); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true})
}
