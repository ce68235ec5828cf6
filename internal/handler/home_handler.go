package handler

import "net/http"

// @Summary Raíz
// @Success 200 {object} map[string]string
// @Router / [get]
func Home(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"message": "Hello World!"})
}
