package http

import (
	"net/http"

	"github.com/conectavoluntarios/api/internal/service"
)

type createOportunidadeRequest struct {
	Titulo    string `json:"titulo" validate:"required,max=200"`
	Descricao string `json:"descricao"`
	OngNome   string `json:"ong_nome" validate:"required,max=200"`
	Endereco  string `json:"endereco"`
}

func (h *Handler) ListOportunidades(w http.ResponseWriter, r *http.Request) {
	items, err := h.oportunidades.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list oportunidades")
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) GetOportunidade(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	item, err := h.oportunidades.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "get oportunidade")
		return
	}
	WriteJSON(w, http.StatusOK, item)
}

// CreateOportunidade é exclusivo de ONGs; o papel é checado no roteador.
func (h *Handler) CreateOportunidade(w http.ResponseWriter, r *http.Request) {
	var payload createOportunidadeRequest
	if !decodeJSON(w, r, &payload) {
		return
	}

	if _, err := h.oportunidades.Create(r.Context(), service.CreateOportunidadeInput{
		Titulo:    payload.Titulo,
		Descricao: payload.Descricao,
		OngNome:   payload.OngNome,
		Endereco:  payload.Endereco,
	}); err != nil {
		writeServiceError(w, r, err, "create oportunidade")
		return
	}

	writeSuccess(w, http.StatusCreated)
}

func (h *Handler) ListOngs(w http.ResponseWriter, r *http.Request) {
	items, err := h.oportunidades.ListOngs(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list ongs")
		return
	}
	WriteJSON(w, http.StatusOK, items)
}
