package httpapi

import (
	"net/http"
)

func (h *Handler) GetPersonImages(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPersonImages")
	defer span.End()

	personID, err := parsePathID(r, "personID")
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	urls, err := h.imageService.URLs(ctx, personID)
	if err != nil {
		h.logger.WarnContext(ctx, "person image lookup failed", "person_id", personID, "error", err)
		writeError(ctx, w, err)
		return
	}
	writeSuccess(ctx, w, http.StatusOK, urls)
}
