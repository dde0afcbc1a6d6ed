package handlers

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/loftbook/engine/internal/models"
	appErr "github.com/loftbook/engine/pkg/errors"
)

func TestLoftsCreate(t *testing.T) {
	userID := uuid.New()

	t.Run("creates and returns 201", func(t *testing.T) {
		svc := new(mockLoftService)
		svc.On("CreateLoft", mock.Anything, userID, "Main Loft").
			Return(&models.Loft{ID: uuid.New(), OwnerID: userID, Name: "Main Loft"}, nil)

		rec := doJSON(t, loftRoutes(userID, NewLoftsHandler(svc)), http.MethodPost, "/lofts", map[string]string{"name": "Main Loft"})
		require.Equal(t, http.StatusCreated, rec.Code)
		require.True(t, decodeResponse(t, rec).Success)
	})

	t.Run("missing name is 400", func(t *testing.T) {
		svc := new(mockLoftService)
		rec := doJSON(t, loftRoutes(userID, NewLoftsHandler(svc)), http.MethodPost, "/lofts", map[string]string{})
		require.Equal(t, http.StatusBadRequest, rec.Code)
		svc.AssertNotCalled(t, "CreateLoft", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestLoftsGet(t *testing.T) {
	userID := uuid.New()
	loftID := uuid.New()

	t.Run("returns the loft with its birds", func(t *testing.T) {
		svc := new(mockLoftService)
		svc.On("GetLoft", mock.Anything, loftID, userID).
			Return(&models.Loft{ID: loftID, OwnerID: userID, Name: "Main"}, []models.Bird{{Ring: "GB241234"}}, nil)

		rec := doJSON(t, loftRoutes(userID, NewLoftsHandler(svc)), http.MethodGet, "/lofts/"+loftID.String(), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		resp := decodeResponse(t, rec)
		data, ok := resp.Data.(map[string]any)
		require.True(t, ok)
		require.Contains(t, data, "loft")
		require.Contains(t, data, "birds")
	})

	t.Run("not owned maps to 404", func(t *testing.T) {
		svc := new(mockLoftService)
		svc.On("GetLoft", mock.Anything, loftID, userID).
			Return(nil, nil, appErr.New(appErr.CodeNotFound, "entity not found"))

		rec := doJSON(t, loftRoutes(userID, NewLoftsHandler(svc)), http.MethodGet, "/lofts/"+loftID.String(), nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("malformed id is 400", func(t *testing.T) {
		svc := new(mockLoftService)
		rec := doJSON(t, loftRoutes(userID, NewLoftsHandler(svc)), http.MethodGet, "/lofts/not-a-uuid", nil)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestLoftsRename(t *testing.T) {
	userID := uuid.New()
	loftID := uuid.New()

	svc := new(mockLoftService)
	svc.On("RenameLoft", mock.Anything, loftID, userID, "Renamed").
		Return(&models.Loft{ID: loftID, OwnerID: userID, Name: "Renamed"}, nil)

	rec := doJSON(t, loftRoutes(userID, NewLoftsHandler(svc)), http.MethodPut, "/lofts/"+loftID.String(), map[string]string{"name": "Renamed"})
	require.Equal(t, http.StatusOK, rec.Code)
	svc.AssertExpectations(t)
}

func TestLoftsDelete(t *testing.T) {
	userID := uuid.New()
	loftID := uuid.New()

	t.Run("deletes and returns 200", func(t *testing.T) {
		svc := new(mockLoftService)
		svc.On("DeleteLoft", mock.Anything, loftID, userID).Return(nil)

		rec := doJSON(t, loftRoutes(userID, NewLoftsHandler(svc)), http.MethodDelete, "/lofts/"+loftID.String(), nil)
		require.Equal(t, http.StatusOK, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("guard failure maps to 404", func(t *testing.T) {
		svc := new(mockLoftService)
		svc.On("DeleteLoft", mock.Anything, loftID, userID).
			Return(appErr.New(appErr.CodeNotFound, "entity not found"))

		rec := doJSON(t, loftRoutes(userID, NewLoftsHandler(svc)), http.MethodDelete, "/lofts/"+loftID.String(), nil)
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
