package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/conectavoluntarios/api/internal/repo"
)

type fakeState struct {
	usuarios      map[int64]repo.Usuario
	ongs          map[int64]repo.Ong
	oportunidades map[int64]repo.Oportunidade
	voluntarios   map[int64]repo.Voluntario
	inscricoes    map[int64]repo.Inscricao
	inscVol       map[int64]int64
	nextID        int64
}

func (s fakeState) clone() fakeState {
	c := fakeState{
		usuarios:      map[int64]repo.Usuario{},
		ongs:          map[int64]repo.Ong{},
		oportunidades: map[int64]repo.Oportunidade{},
		voluntarios:   map[int64]repo.Voluntario{},
		inscricoes:    map[int64]repo.Inscricao{},
		inscVol:       map[int64]int64{},
		nextID:        s.nextID,
	}
	for k, v := range s.usuarios {
		c.usuarios[k] = v
	}
	for k, v := range s.ongs {
		c.ongs[k] = v
	}
	for k, v := range s.oportunidades {
		c.oportunidades[k] = v
	}
	for k, v := range s.voluntarios {
		c.voluntarios[k] = v
	}
	for k, v := range s.inscricoes {
		c.inscricoes[k] = v
	}
	for k, v := range s.inscVol {
		c.inscVol[k] = v
	}
	return c
}

// fakeStore imita o schema em memória: unicidade de email, nome da ONG e CPF,
// rollback completo quando a função da transação falha.
type fakeStore struct {
	state fakeState
	clock time.Time

	commits   int
	rollbacks int

	failCreateOportunidade error
	// racingCPF simula outro pedido criando o mesmo CPF entre a busca e o insert.
	racingCPF      string
	racesRemaining int
	external       []repo.Voluntario
	hideExternal   bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		state: fakeState{}.clone(),
		clock: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (f *fakeStore) id() int64 {
	f.state.nextID++
	return f.state.nextID
}

func (f *fakeStore) InTx(ctx context.Context, fn func(repo.Querier) error) error {
	snapshot := f.state.clone()
	if err := fn(f); err != nil {
		f.state = snapshot
		f.applyExternal()
		f.rollbacks++
		return err
	}
	f.commits++
	return nil
}

func (f *fakeStore) applyExternal() {
	if f.hideExternal {
		f.external = nil
		return
	}
	for _, v := range f.external {
		if v.ID > f.state.nextID {
			f.state.nextID = v.ID
		}
		f.state.voluntarios[v.ID] = v
	}
	f.external = nil
}

func (f *fakeStore) CreateUsuario(ctx context.Context, arg repo.CreateUsuarioParams) (int64, error) {
	for _, u := range f.state.usuarios {
		if u.Email == arg.Email {
			return 0, &repo.DuplicateError{Constraint: repo.ConstraintUsuarioEmail, Err: errors.New("duplicate key")}
		}
	}
	id := f.id()
	f.state.usuarios[id] = repo.Usuario{ID: id, Nome: arg.Nome, Email: arg.Email, SenhaHash: arg.SenhaHash, Role: arg.Role, CNPJ: arg.CNPJ, CriadoEm: f.clock}
	return id, nil
}

func (f *fakeStore) GetUsuarioByEmail(ctx context.Context, email string) (repo.Usuario, error) {
	for _, u := range f.state.usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return repo.Usuario{}, repo.ErrNotFound
}

func (f *fakeStore) GetUsuarioByID(ctx context.Context, id int64) (repo.Usuario, error) {
	u, ok := f.state.usuarios[id]
	if !ok {
		return repo.Usuario{}, repo.ErrNotFound
	}
	return u, nil
}

func (f *fakeStore) UpsertOng(ctx context.Context, nome, endereco string) (int64, error) {
	for _, o := range f.state.ongs {
		if o.Nome == nome {
			return o.ID, nil
		}
	}
	id := f.id()
	f.state.ongs[id] = repo.Ong{ID: id, Nome: nome, Endereco: endereco}
	return id, nil
}

func (f *fakeStore) ListOngs(ctx context.Context) ([]repo.Ong, error) {
	items := []repo.Ong{}
	for _, o := range f.state.ongs {
		items = append(items, o)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (f *fakeStore) CreateOportunidade(ctx context.Context, arg repo.CreateOportunidadeParams) (int64, error) {
	if f.failCreateOportunidade != nil {
		return 0, f.failCreateOportunidade
	}
	id := f.id()
	f.state.oportunidades[id] = repo.Oportunidade{ID: id, Titulo: arg.Titulo, Descricao: arg.Descricao, OngID: arg.OngID, OngNome: arg.OngNome}
	return id, nil
}

func (f *fakeStore) ListOportunidades(ctx context.Context) ([]repo.Oportunidade, error) {
	items := []repo.Oportunidade{}
	for _, o := range f.state.oportunidades {
		items = append(items, o)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (f *fakeStore) GetOportunidade(ctx context.Context, id int64) (repo.Oportunidade, error) {
	o, ok := f.state.oportunidades[id]
	if !ok {
		return repo.Oportunidade{}, repo.ErrNotFound
	}
	return o, nil
}

func (f *fakeStore) GetVoluntarioIDByCPF(ctx context.Context, cpf string) (int64, error) {
	for _, v := range f.state.voluntarios {
		if v.CPF == cpf {
			return v.ID, nil
		}
	}
	return 0, repo.ErrNotFound
}

func (f *fakeStore) CreateVoluntario(ctx context.Context, arg repo.CreateVoluntarioParams) (int64, error) {
	if f.racesRemaining > 0 && arg.CPF == f.racingCPF {
		f.racesRemaining--
		f.state.nextID++
		f.external = append(f.external, repo.Voluntario{ID: f.state.nextID, Nome: "Concorrente", Nascimento: "1990-01-01", CPF: arg.CPF})
		return 0, &repo.DuplicateError{Constraint: repo.ConstraintVoluntarioCPF, Err: errors.New("duplicate key")}
	}
	for _, v := range f.state.voluntarios {
		if v.CPF == arg.CPF {
			return 0, &repo.DuplicateError{Constraint: repo.ConstraintVoluntarioCPF, Err: errors.New("duplicate key")}
		}
	}
	id := f.id()
	f.state.voluntarios[id] = repo.Voluntario{ID: id, Nome: arg.Nome, Nascimento: arg.Nascimento.Format("2006-01-02"), CPF: arg.CPF, Mensagem: arg.Mensagem}
	return id, nil
}

func (f *fakeStore) ListVoluntarios(ctx context.Context) ([]repo.Voluntario, error) {
	items := []repo.Voluntario{}
	for _, v := range f.state.voluntarios {
		items = append(items, v)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

func (f *fakeStore) GetVoluntario(ctx context.Context, id int64) (repo.Voluntario, error) {
	v, ok := f.state.voluntarios[id]
	if !ok {
		return repo.Voluntario{}, repo.ErrNotFound
	}
	return v, nil
}

func (f *fakeStore) CreateInscricao(ctx context.Context, voluntarioID, oportunidadeID int64, status string) (int64, error) {
	id := f.id()
	f.clock = f.clock.Add(time.Minute)
	vid := voluntarioID
	f.state.inscricoes[id] = repo.Inscricao{ID: id, VoluntarioID: &vid, OportunidadeID: oportunidadeID, DataInscricao: f.clock, Status: status}
	f.state.inscVol[id] = voluntarioID
	return id, nil
}

func (f *fakeStore) listInscricoes(keep func(repo.Inscricao, int64) bool) []repo.Inscricao {
	items := []repo.Inscricao{}
	for id, i := range f.state.inscricoes {
		if keep(i, f.state.inscVol[id]) {
			items = append(items, i)
		}
	}
	sort.Slice(items, func(a, b int) bool { return items[a].DataInscricao.After(items[b].DataInscricao) })
	return items
}

func (f *fakeStore) ListInscricoes(ctx context.Context) ([]repo.Inscricao, error) {
	return f.listInscricoes(func(repo.Inscricao, int64) bool { return true }), nil
}

func (f *fakeStore) ListInscricoesByOng(ctx context.Context, ongID int64) ([]repo.Inscricao, error) {
	return f.listInscricoes(func(i repo.Inscricao, _ int64) bool {
		return f.state.oportunidades[i.OportunidadeID].OngID == ongID
	}), nil
}

func (f *fakeStore) ListInscricoesByVoluntario(ctx context.Context, voluntarioID int64) ([]repo.Inscricao, error) {
	return f.listInscricoes(func(_ repo.Inscricao, vid int64) bool { return vid == voluntarioID }), nil
}

func (f *fakeStore) UpdateInscricaoStatus(ctx context.Context, id int64, status string) error {
	i, ok := f.state.inscricoes[id]
	if !ok {
		return repo.ErrNotFound
	}
	i.Status = status
	f.state.inscricoes[id] = i
	return nil
}
