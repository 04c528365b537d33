package repo

import "time"

// Papéis aceitos em usuarios.role.
const (
	RoleVolunteer = "volunteer"
	RoleNGO       = "ngo"
)

// Status aceitos em inscricoes.status.
const (
	StatusPendente  = "pendente"
	StatusAprovado  = "aprovado"
	StatusRejeitado = "rejeitado"
)

// Constraints de unicidade do schema.
const (
	ConstraintUsuarioEmail  = "usuarios_email_key"
	ConstraintVoluntarioCPF = "voluntarios_cpf_key"
	ConstraintOngNome       = "ongs_nome_key"
)

// Usuario representa conta de voluntário ou ONG.
type Usuario struct {
	ID        int64
	Nome      string
	Email     string
	SenhaHash string
	Role      string
	CNPJ      *string
	CriadoEm  time.Time
}

// CreateUsuarioParams agrupa os campos de cadastro.
type CreateUsuarioParams struct {
	Nome      string
	Email     string
	SenhaHash string
	Role      string
	CNPJ      *string
}

// Ong representa organização que publica oportunidades.
type Ong struct {
	ID       int64  `json:"id"`
	Nome     string `json:"nome"`
	Endereco string `json:"endereco"`
}

// Oportunidade é uma vaga publicada por uma ONG.
type Oportunidade struct {
	ID        int64  `json:"id"`
	Titulo    string `json:"titulo"`
	Descricao string `json:"descricao"`
	OngID     int64  `json:"ong_id"`
	OngNome   string `json:"ong_nome"`
}

// CreateOportunidadeParams agrupa os campos de uma nova oportunidade.
type CreateOportunidadeParams struct {
	Titulo    string
	Descricao string
	OngID     int64
	OngNome   string
}

// Voluntario é a pessoa inscrita, identificada pelo CPF normalizado.
type Voluntario struct {
	ID         int64  `json:"id"`
	Nome       string `json:"nome"`
	Nascimento string `json:"nascimento"`
	CPF        string `json:"cpf"`
	Mensagem   string `json:"mensagem"`
}

// CreateVoluntarioParams agrupa os campos de um novo voluntário.
type CreateVoluntarioParams struct {
	Nome       string
	Nascimento time.Time
	CPF        string
	Mensagem   string
}

// Inscricao descreve uma candidatura listada com dados agregados.
type Inscricao struct {
	ID                 int64     `json:"inscricao_id"`
	VoluntarioID       *int64    `json:"voluntario_id,omitempty"`
	VoluntarioNome     *string   `json:"voluntario_nome,omitempty"`
	OportunidadeID     int64     `json:"oportunidade_id"`
	OportunidadeTitulo *string   `json:"oportunidade_titulo,omitempty"`
	DataInscricao      time.Time `json:"data_inscricao"`
	Status             string    `json:"status"`
}

// ValidStatus informa se status pertence ao conjunto aceito.
func ValidStatus(status string) bool {
	switch status {
	case StatusPendente, StatusAprovado, StatusRejeitado:
		return true
	}
	return false
}

// ValidRole informa se role pertence ao conjunto aceito.
func ValidRole(role string) bool {
	return role == RoleVolunteer || role == RoleNGO
}
