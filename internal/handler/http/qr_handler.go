package http

import (
	"fmt"
	"net/http"

	"urlite/internal/qr"

	"github.com/go-chi/chi/v5"
)

type qrResponse struct {
	QRCode   string `json:"qrCode"`
	ShortURL string `json:"shortUrl"`
}

// QRCode handles GET /api/qr/{urlID}.
// Owned links are restricted to their owner; ownerless legacy links are
// open to any authenticated caller.
func (h *Handler) QRCode(w http.ResponseWriter, r *http.Request) {
	userID, _ := UserID(r.Context())

	link, err := h.links.GetForQR(r.Context(), chi.URLParam(r, "urlID"), userID)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	shortURL := fmt.Sprintf("%s/%s", h.baseURL, link.ShortCode)
	dataURL, err := qr.DataURL(shortURL)
	if err != nil {
		h.logger.Error("failed to generate QR code", "link_id", link.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to generate QR code")
		return
	}

	respondSuccess(w, http.StatusOK, qrResponse{
		QRCode:   dataURL,
		ShortURL: shortURL,
	}, "")
}
