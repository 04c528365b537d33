package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

type successResponse struct {
	Success bool `json:"success"`
}

func writeSuccess(w http.ResponseWriter, status int) {
	WriteJSON(w, status, successResponse{Success: true})
}

// idParam lê um identificador inteiro da rota; responde 400 quando não é número.
// Zero e negativos seguem adiante e caem no 404 de registro inexistente.
func idParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		WriteError(w, http.StatusBadRequest, "VALIDATION", name+" inválido", nil)
		return 0, false
	}
	return id, true
}
