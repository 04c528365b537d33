package http

import (
	"net/http"

	httpmiddleware "github.com/conectavoluntarios/api/internal/http/middleware"
	"github.com/conectavoluntarios/api/internal/service"
)

type signupRequest struct {
	Nome  string  `json:"nome" validate:"required"`
	Email string  `json:"email" validate:"required,email"`
	Senha string  `json:"senha" validate:"required"`
	Role  string  `json:"role" validate:"required"`
	CNPJ  *string `json:"cnpj"`
}

type loginRequest struct {
	Email string `json:"email" validate:"required"`
	Senha string `json:"senha" validate:"required"`
}

// Signup cria a conta e já devolve o token de acesso.
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var payload signupRequest
	if !decodeJSON(w, r, &payload) {
		return
	}

	session, err := h.authService.Signup(r.Context(), service.SignupInput{
		Nome:  payload.Nome,
		Email: payload.Email,
		Senha: payload.Senha,
		Role:  payload.Role,
		CNPJ:  payload.CNPJ,
	})
	if err != nil {
		writeServiceError(w, r, err, "signup")
		return
	}

	WriteJSON(w, http.StatusCreated, session)
}

// Login autentica por e-mail e senha.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var payload loginRequest
	if !decodeJSON(w, r, &payload) {
		return
	}

	session, err := h.authService.Login(r.Context(), payload.Email, payload.Senha)
	if err != nil {
		writeServiceError(w, r, err, "login")
		return
	}

	WriteJSON(w, http.StatusOK, session)
}

// Me devolve a identidade do token atual.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	identity := httpmiddleware.GetIdentity(r.Context())
	if identity == nil {
		WriteError(w, http.StatusUnauthorized, "AUTH", "não autenticado", nil)
		return
	}
	WriteJSON(w, http.StatusOK, identity)
}
