package handler

import (
	"encoding/json"
	"net/http"
)

// Index godoc
// @Summary      Check API status
// @Description  reports whether the API is up
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]bool
// @Router       / [get]
func Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]bool{"status": true})
}
