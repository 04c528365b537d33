package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/conectavoluntarios/api/internal/service"
)

type submitInscricaoRequest struct {
	Nome           string `json:"nome" validate:"required"`
	Nascimento     string `json:"nascimento" validate:"required,datetime=2006-01-02"`
	CPF            string `json:"cpf" validate:"required"`
	Mensagem       string `json:"mensagem"`
	OportunidadeID int64  `json:"oportunidade_id" validate:"gt=0"`
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

func (h *Handler) ListInscricoes(w http.ResponseWriter, r *http.Request) {
	items, err := h.inscricoes.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list inscricoes")
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) ListInscricoesByOng(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	items, err := h.inscricoes.ListByOng(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "list inscricoes by ong")
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

func (h *Handler) ListInscricoesByVoluntario(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}
	items, err := h.inscricoes.ListByVoluntario(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err, "list inscricoes by voluntario")
		return
	}
	WriteJSON(w, http.StatusOK, items)
}

// SubmitInscricao registra a candidatura como pendente.
func (h *Handler) SubmitInscricao(w http.ResponseWriter, r *http.Request) {
	var payload submitInscricaoRequest
	if !decodeJSON(w, r, &payload) {
		return
	}

	if _, err := h.inscricoes.Submit(r.Context(), service.SubmitInput{
		Nome:           payload.Nome,
		Nascimento:     payload.Nascimento,
		CPF:            payload.CPF,
		Mensagem:       payload.Mensagem,
		OportunidadeID: payload.OportunidadeID,
	}); err != nil {
		writeServiceError(w, r, err, "submit inscricao")
		return
	}

	writeSuccess(w, http.StatusCreated)
}

// UpdateInscricaoStatus aceita o status por query (?status=) ou corpo JSON; a query prevalece.
func (h *Handler) UpdateInscricaoStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r, "id")
	if !ok {
		return
	}

	status := strings.TrimSpace(r.URL.Query().Get("status"))
	if status == "" && r.Body != nil {
		var payload updateStatusRequest
		err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&payload)
		if err != nil && !errors.Is(err, io.EOF) {
			WriteError(w, http.StatusBadRequest, "VALIDATION", "JSON inválido", nil)
			return
		}
		status = payload.Status
	}

	if err := h.inscricoes.UpdateStatus(r.Context(), id, status); err != nil {
		writeServiceError(w, r, err, "update inscricao status")
		return
	}

	writeSuccess(w, http.StatusOK)
}
