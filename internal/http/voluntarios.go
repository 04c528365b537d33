package http

import "net/http"

func (h *Handler) ListVoluntarios(w http.ResponseWriter, r *http.Request) {
	items, err := h.voluntarios.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list voluntarios")
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) GetVoluntario(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	item, err := h.voluntarios.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "get voluntario")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}
