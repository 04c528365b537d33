package http

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/conectavoluntarios/api/internal/repo"
)

// memStore é um Store em memória suficiente para exercitar o roteador.
type memStore struct {
	mu            sync.Mutex
	nextID        int64
	usuarios      map[int64]repo.Usuario
	ongs          map[int64]repo.Ong
	oportunidades map[int64]repo.Oportunidade
	voluntarios   map[int64]repo.Voluntario
	inscricoes    map[int64]repo.Inscricao
}

func newMemStore() *memStore {
	return &memStore{
		usuarios:      map[int64]repo.Usuario{},
		ongs:          map[int64]repo.Ong{},
		oportunidades: map[int64]repo.Oportunidade{},
		voluntarios:   map[int64]repo.Voluntario{},
		inscricoes:    map[int64]repo.Inscricao{},
	}
}

func (m *memStore) InTx(ctx context.Context, fn func(repo.Querier) error) error {
	return fn(m)
}

func (m *memStore) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *memStore) CreateUsuario(ctx context.Context, arg repo.CreateUsuarioParams) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.usuarios {
		if u.Email == arg.Email {
			return 0, &repo.DuplicateError{Constraint: repo.ConstraintUsuarioEmail, Err: errors.New("duplicate key")}
		}
	}
	id := m.id()
	m.usuarios[id] = repo.Usuario{ID: id, Nome: arg.Nome, Email: arg.Email, SenhaHash: arg.SenhaHash, Role: arg.Role, CNPJ: arg.CNPJ}
	return id, nil
}

func (m *memStore) GetUsuarioByEmail(ctx context.Context, email string) (repo.Usuario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return repo.Usuario{}, repo.ErrNotFound
}

func (m *memStore) GetUsuarioByID(ctx context.Context, id int64) (repo.Usuario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.usuarios[id]
	if !ok {
		return repo.Usuario{}, repo.ErrNotFound
	}
	return u, nil
}

func (m *memStore) UpsertOng(ctx context.Context, nome, endereco string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.ongs {
		if o.Nome == nome {
			return o.ID, nil
		}
	}
	id := m.id()
	m.ongs[id] = repo.Ong{ID: id, Nome: nome, Endereco: endereco}
	return id, nil
}

func (m *memStore) ListOngs(ctx context.Context) ([]repo.Ong, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]repo.Ong, 0, len(m.ongs))
	for _, o := range m.ongs {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) CreateOportunidade(ctx context.Context, arg repo.CreateOportunidadeParams) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.id()
	m.oportunidades[id] = repo.Oportunidade{ID: id, Titulo: arg.Titulo, Descricao: arg.Descricao, OngID: arg.OngID, OngNome: arg.OngNome}
	return id, nil
}

func (m *memStore) ListOportunidades(ctx context.Context) ([]repo.Oportunidade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]repo.Oportunidade, 0, len(m.oportunidades))
	for _, o := range m.oportunidades {
		out = append(out, o)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) GetOportunidade(ctx context.Context, id int64) (repo.Oportunidade, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.oportunidades[id]
	if !ok {
		return repo.Oportunidade{}, repo.ErrNotFound
	}
	return o, nil
}

func (m *memStore) GetVoluntarioIDByCPF(ctx context.Context, cpf string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.voluntarios {
		if v.CPF == cpf {
			return v.ID, nil
		}
	}
	return 0, repo.ErrNotFound
}

func (m *memStore) CreateVoluntario(ctx context.Context, arg repo.CreateVoluntarioParams) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.id()
	m.voluntarios[id] = repo.Voluntario{ID: id, Nome: arg.Nome, Nascimento: arg.Nascimento.Format("2006-01-02"), CPF: arg.CPF, Mensagem: arg.Mensagem}
	return id, nil
}

func (m *memStore) ListVoluntarios(ctx context.Context) ([]repo.Voluntario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]repo.Voluntario, 0, len(m.voluntarios))
	for _, v := range m.voluntarios {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memStore) GetVoluntario(ctx context.Context, id int64) (repo.Voluntario, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.voluntarios[id]
	if !ok {
		return repo.Voluntario{}, repo.ErrNotFound
	}
	return v, nil
}

func (m *memStore) CreateInscricao(ctx context.Context, voluntarioID, oportunidadeID int64, status string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := m.id()
	vid := voluntarioID
	m.inscricoes[id] = repo.Inscricao{
		ID:             id,
		VoluntarioID:   &vid,
		OportunidadeID: oportunidadeID,
		DataInscricao:  time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC).Add(time.Duration(id) * time.Minute),
		Status:         status,
	}
	return id, nil
}

func (m *memStore) listWhere(keep func(repo.Inscricao) bool) []repo.Inscricao {
	out := []repo.Inscricao{}
	for _, i := range m.inscricoes {
		if !keep(i) {
			continue
		}
		if v, ok := m.voluntarios[*i.VoluntarioID]; ok {
			nome := v.Nome
			i.VoluntarioNome = &nome
		}
		if o, ok := m.oportunidades[i.OportunidadeID]; ok {
			titulo := o.Titulo
			i.OportunidadeTitulo = &titulo
		}
		out = append(out, i)
	}
	sort.Slice(out, func(a, b int) bool { return out[a].DataInscricao.After(out[b].DataInscricao) })
	return out
}

func (m *memStore) ListInscricoes(ctx context.Context) ([]repo.Inscricao, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listWhere(func(repo.Inscricao) bool { return true }), nil
}

func (m *memStore) ListInscricoesByOng(ctx context.Context, ongID int64) ([]repo.Inscricao, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listWhere(func(i repo.Inscricao) bool {
		return m.oportunidades[i.OportunidadeID].OngID == ongID
	}), nil
}

func (m *memStore) ListInscricoesByVoluntario(ctx context.Context, voluntarioID int64) ([]repo.Inscricao, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listWhere(func(i repo.Inscricao) bool { return *i.VoluntarioID == voluntarioID }), nil
}

func (m *memStore) UpdateInscricaoStatus(ctx context.Context, id int64, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	i, ok := m.inscricoes[id]
	if !ok {
		return repo.ErrNotFound
	}
	i.Status = status
	m.inscricoes[id] = i
	return nil
}
