package handlers

import (
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/agroassist/engine/internal/api/middleware"
	"github.com/agroassist/engine/internal/api/types"
	"github.com/agroassist/engine/internal/services"
)

// maxImageBytes caps uploaded plant images at 8 MiB.
const maxImageBytes = 8 << 20

type ScansHandler struct {
	scans services.ScanService
}

func NewScansHandler(scans services.ScanService) *ScansHandler {
	return &ScansHandler{scans: scans}
}

func (h *ScansHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(middleware.GetUserID(r.Context()))
	if err != nil {
		writeErrorStr(w, http.StatusUnauthorized, "invalid user")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	file, _, err := r.FormFile("image")
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "no image provided")
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "failed to read image")
		return
	}

	scan, err := h.scans.CreateScan(r.Context(), userID, image)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusAccepted, types.APIResponse{Success: true, Data: scan})
}

func (h *ScansHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(middleware.GetUserID(r.Context()))
	if err != nil {
		writeErrorStr(w, http.StatusUnauthorized, "invalid user")
		return
	}
	scanID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid scan id")
		return
	}

	scan, err := h.scans.GetScan(r.Context(), scanID, userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: scan})
}

func (h *ScansHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(middleware.GetUserID(r.Context()))
	if err != nil {
		writeErrorStr(w, http.StatusUnauthorized, "invalid user")
		return
	}

	items, err := h.scans.ListScans(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: items})
}
