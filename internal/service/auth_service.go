package service

import (
	"context"
	"errors"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/conectavoluntarios/api/internal/auth"
	"github.com/conectavoluntarios/api/internal/repo"
)

type authRepository interface {
	CreateUsuario(ctx context.Context, arg repo.CreateUsuarioParams) (int64, error)
	GetUsuarioByEmail(ctx context.Context, email string) (repo.Usuario, error)
	GetUsuarioByID(ctx context.Context, id int64) (repo.Usuario, error)
}

// AuthService concentra cadastro, login e validação de sessões.
type AuthService struct {
	repo authRepository
	jwt  *auth.JWTManager
}

// NewAuthService cria novo serviço.
func NewAuthService(r authRepository, jwtMgr *auth.JWTManager) *AuthService {
	return &AuthService{repo: r, jwt: jwtMgr}
}

// JWT expõe gerenciador de JWT (útil em middlewares).
func (s *AuthService) JWT() *auth.JWTManager {
	return s.jwt
}

// PublicUser é a projeção do usuário devolvida ao cliente.
type PublicUser struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session é o resultado de signup/login.
type Session struct {
	AccessToken string     `json:"access_token"`
	TokenType   string     `json:"token_type"`
	User        PublicUser `json:"user"`
}

// Identity é o usuário autenticado da requisição; Role vem do token.
type Identity struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// SignupInput agrupa os dados de cadastro.
type SignupInput struct {
	Nome  string
	Email string
	Senha string
	Role  string
	CNPJ  *string
}

// Signup cria a conta e já devolve uma sessão.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*Session, error) {
	if !repo.ValidRole(in.Role) {
		return nil, newError(ErrValidation, "role inválida")
	}

	nome := strings.TrimSpace(in.Nome)
	email := normalizeEmail(in.Email)
	if nome == "" || email == "" || in.Senha == "" {
		return nil, newError(ErrValidation, "nome, email e senha são obrigatórios")
	}

	var cnpj *string
	if in.CNPJ != nil && strings.TrimSpace(*in.CNPJ) != "" {
		v := strings.TrimSpace(*in.CNPJ)
		cnpj = &v
	}

	hash, err := auth.Hash(in.Senha)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.CreateUsuario(ctx, repo.CreateUsuarioParams{
		Nome:      nome,
		Email:     email,
		SenhaHash: hash,
		Role:      in.Role,
		CNPJ:      cnpj,
	})
	if err != nil {
		if repo.IsDuplicateOn(err, repo.ConstraintUsuarioEmail) {
			return nil, newError(ErrConflict, "email já cadastrado")
		}
		return nil, err
	}

	return s.newSession(PublicUser{ID: id, Nome: nome, Email: email, Role: in.Role})
}

// Login autentica por e-mail e senha.
func (s *AuthService) Login(ctx context.Context, email, senha string) (*Session, error) {
	user, err := s.repo.GetUsuarioByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			log.Warn().Msg("login: usuário não encontrado")
			return nil, newError(ErrInvalidCredentials, "credenciais inválidas")
		}
		return nil, err
	}

	ok, err := auth.Verify(senha, user.SenhaHash)
	if err != nil {
		log.Warn().Err(err).Int64("user_id", user.ID).Msg("login: hash ilegível")
		return nil, newError(ErrInvalidCredentials, "credenciais inválidas")
	}
	if !ok {
		log.Warn().Int64("user_id", user.ID).Msg("login: senha inválida")
		return nil, newError(ErrInvalidCredentials, "credenciais inválidas")
	}

	return s.newSession(PublicUser{ID: user.ID, Nome: user.Nome, Email: user.Email, Role: user.Role})
}

// Authenticate valida o token e carrega o usuário. O papel devolvido é o do token,
// então mudanças de papel só valem para tokens emitidos depois delas.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*Identity, error) {
	claims, err := s.jwt.ParseAndValidate(token)
	if err != nil {
		return nil, newError(ErrUnauthorized, "token inválido/expirado")
	}

	id, err := claims.SubjectID()
	if err != nil {
		return nil, newError(ErrUnauthorized, "token inválido/expirado")
	}

	user, err := s.repo.GetUsuarioByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, newError(ErrUnauthorized, "usuário não encontrado")
		}
		return nil, err
	}

	return &Identity{ID: user.ID, Nome: user.Nome, Email: user.Email, Role: claims.Role}, nil
}

// RequireRole falha com ErrForbidden quando a identidade não tem o papel esperado.
func RequireRole(identity *Identity, role string) error {
	if identity == nil {
		return newError(ErrUnauthorized, "token ausente")
	}
	if identity.Role != role {
		return newError(ErrForbidden, "permissão negada")
	}
	return nil
}

func (s *AuthService) newSession(user PublicUser) (*Session, error) {
	token, err := s.jwt.IssueToken(user.ID, user.Role)
	if err != nil {
		return nil, err
	}
	return &Session{AccessToken: token, TokenType: "bearer", User: user}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
