package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"safet-backend/internal/claims"
	"safet-backend/internal/storage"
)

// Evidence files: weight slips, parcel photos, carrier scans.
const maxEvidenceSize = 10 << 20 // 10 MB

var allowedEvidenceTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/jpg":       true,
	"image/png":       true,
}

// EvidenceHandler accepts appeal evidence uploads.
// It depends on the storage.Store interface, not a specific backend.
type EvidenceHandler struct {
	store storage.Store
}

// NewEvidenceHandler creates an EvidenceHandler with the given storage backend.
func NewEvidenceHandler(store storage.Store) *EvidenceHandler {
	return &EvidenceHandler{store: store}
}

// Upload handles POST /api/upload.
// Accepts: multipart/form-data with a "file" field and an "orderId"
// field tying the evidence to a claim.
// Returns: file metadata (url, name, size, type) as JSON.
func (h *EvidenceHandler) Upload(w http.ResponseWriter, r *http.Request) {
	// Enforce size limit before reading body
	r.Body = http.MaxBytesReader(w, r.Body, maxEvidenceSize)

	if err := r.ParseMultipartForm(maxEvidenceSize); err != nil {
		JSONError(w, http.StatusBadRequest, "File too large. Maximum size is 10MB.")
		return
	}

	orderID := r.FormValue("orderId")
	if !claims.ValidOrderID(orderID) {
		JSONError(w, http.StatusUnprocessableEntity, "Evidence must reference a valid order ID (123-4567-890).")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		JSONError(w, http.StatusBadRequest, "Missing 'file' field in form data.")
		return
	}
	defer file.Close()

	// Validate file type by reading the first 512 bytes (MIME sniffing)
	buffer := make([]byte, 512)
	n, err := file.Read(buffer)
	if err != nil && err != io.EOF {
		JSONError(w, http.StatusBadRequest, "Could not read file.")
		return
	}
	contentType := http.DetectContentType(buffer[:n])

	if !allowedEvidenceTypes[contentType] {
		JSONError(w, http.StatusBadRequest, fmt.Sprintf(
			"File type '%s' not allowed. Accepted: PDF, JPG, PNG.", contentType,
		))
		return
	}

	// Reset file reader to beginning after MIME sniffing
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		JSONError(w, http.StatusInternalServerError, "Failed to process file.")
		return
	}

	// Evidence is keyed by order so one claim's files stay together;
	// the timestamp prevents collisions between retries.
	safeName := sanitizeFilename(header.Filename)
	storagePath := fmt.Sprintf("evidence/%s/%d_%s", orderID, time.Now().Unix(), safeName)

	info, err := h.store.Save(r.Context(), storagePath, file, contentType)
	if err != nil {
		log.Printf("Evidence upload failed: %v", err)
		JSONError(w, http.StatusInternalServerError, "Failed to save file.")
		return
	}

	JSON(w, http.StatusOK, info)
}

// ServeFile serves stored evidence.
// For R2 storage, redirects to the public CDN URL.
// For local storage, serves from disk.
func (h *EvidenceHandler) ServeFile(w http.ResponseWriter, r *http.Request) {
	filePath := strings.TrimPrefix(r.URL.Path, "/api/files/")
	if filePath == "" {
		JSONError(w, http.StatusBadRequest, "File path required.")
		return
	}

	// If the store returns an https:// URL (R2), redirect to CDN
	if url := h.store.URL(filePath); strings.HasPrefix(url, "https://") {
		http.Redirect(w, r, url, http.StatusTemporaryRedirect)
		return
	}

	// Otherwise serve from local disk
	http.ServeFile(w, r, filepath.Join("uploads", filepath.Clean(filePath)))
}

// sanitizeFilename removes path separators and unsafe characters.
func sanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = strings.ReplaceAll(name, " ", "_")
	return name
}
