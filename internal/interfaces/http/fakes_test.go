package http_test

import (
	"context"
	"time"

	"github.com/tu-usuario/suscripciones-api/internal/domain/entity"
	"github.com/tu-usuario/suscripciones-api/internal/domain/repository"
	"github.com/tu-usuario/suscripciones-api/internal/domain/valueobject"
)

// Fakes en memoria de los puertos de persistencia, para probar las rutas
// con los casos de uso reales y sin base de datos.

type fakePlanRepo struct {
	orden  []string
	planes map[string]*entity.Plan
}

func newFakePlanRepo() *fakePlanRepo {
	return &fakePlanRepo{planes: make(map[string]*entity.Plan)}
}

func (r *fakePlanRepo) Save(_ context.Context, plan *entity.Plan) error {
	if _, ok := r.planes[plan.ID.Value()]; !ok {
		r.orden = append(r.orden, plan.ID.Value())
	}
	r.planes[plan.ID.Value()] = plan
	return nil
}

func (r *fakePlanRepo) FindByID(_ context.Context, id valueobject.ID) (*entity.Plan, error) {
	return r.planes[id.Value()], nil
}

func (r *fakePlanRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Plan, error) {
	var out []*entity.Plan
	for i := offset; i < len(r.orden) && len(out) < limit; i++ {
		out = append(out, r.planes[r.orden[i]])
	}
	return out, nil
}

func (r *fakePlanRepo) Count(_ context.Context) (int, error) { return len(r.planes), nil }

func (r *fakePlanRepo) Exists(_ context.Context, id valueobject.ID) (bool, error) {
	_, ok := r.planes[id.Value()]
	return ok, nil
}

func (r *fakePlanRepo) Delete(_ context.Context, id valueobject.ID) error {
	delete(r.planes, id.Value())
	for i, v := range r.orden {
		if v == id.Value() {
			r.orden = append(r.orden[:i], r.orden[i+1:]...)
			break
		}
	}
	return nil
}

type fakeEmpresaRepo struct {
	orden    []string
	empresas map[string]*entity.Empresa
}

func newFakeEmpresaRepo() *fakeEmpresaRepo {
	return &fakeEmpresaRepo{empresas: make(map[string]*entity.Empresa)}
}

func (r *fakeEmpresaRepo) Save(_ context.Context, empresa *entity.Empresa) error {
	if _, ok := r.empresas[empresa.ID.Value()]; !ok {
		r.orden = append(r.orden, empresa.ID.Value())
	}
	r.empresas[empresa.ID.Value()] = empresa
	return nil
}

func (r *fakeEmpresaRepo) FindByID(_ context.Context, id valueobject.ID) (*entity.Empresa, error) {
	return r.empresas[id.Value()], nil
}

func (r *fakeEmpresaRepo) FindByEmail(_ context.Context, email valueobject.Email) (*entity.Empresa, error) {
	for _, id := range r.orden {
		if r.empresas[id].Email.Equals(email) {
			return r.empresas[id], nil
		}
	}
	return nil, nil
}

func (r *fakeEmpresaRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Empresa, error) {
	var out []*entity.Empresa
	for i := offset; i < len(r.orden) && len(out) < limit; i++ {
		out = append(out, r.empresas[r.orden[i]])
	}
	return out, nil
}

func (r *fakeEmpresaRepo) FindByPlanID(_ context.Context, planID valueobject.ID) ([]*entity.Empresa, error) {
	var out []*entity.Empresa
	for _, id := range r.orden {
		if r.empresas[id].PlanID.Equals(planID) {
			out = append(out, r.empresas[id])
		}
	}
	return out, nil
}

func (r *fakeEmpresaRepo) Count(_ context.Context) (int, error) { return len(r.empresas), nil }

func (r *fakeEmpresaRepo) ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error) {
	e, _ := r.FindByEmail(ctx, email)
	return e != nil, nil
}

func (r *fakeEmpresaRepo) ExistsByEmailExcludingID(_ context.Context, email valueobject.Email, excludeID valueobject.ID) (bool, error) {
	for _, e := range r.empresas {
		if e.Email.Equals(email) && !e.ID.Equals(excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeEmpresaRepo) CountUsuariosActivos(context.Context, valueobject.ID) (int, error) {
	return 0, nil
}

func (r *fakeEmpresaRepo) Delete(_ context.Context, id valueobject.ID) error {
	delete(r.empresas, id.Value())
	for i, v := range r.orden {
		if v == id.Value() {
			r.orden = append(r.orden[:i], r.orden[i+1:]...)
			break
		}
	}
	return nil
}

type fakeUsuarioRepo struct {
	orden    []string
	usuarios map[string]*entity.UsuarioEmpresa
}

func newFakeUsuarioRepo() *fakeUsuarioRepo {
	return &fakeUsuarioRepo{usuarios: make(map[string]*entity.UsuarioEmpresa)}
}

func (r *fakeUsuarioRepo) Save(_ context.Context, usuario *entity.UsuarioEmpresa) error {
	if _, ok := r.usuarios[usuario.ID.Value()]; !ok {
		r.orden = append(r.orden, usuario.ID.Value())
	}
	r.usuarios[usuario.ID.Value()] = usuario
	return nil
}

func (r *fakeUsuarioRepo) FindByID(_ context.Context, id valueobject.ID) (*entity.UsuarioEmpresa, error) {
	return r.usuarios[id.Value()], nil
}

func (r *fakeUsuarioRepo) FindByEmail(_ context.Context, email valueobject.Email) (*entity.UsuarioEmpresa, error) {
	for _, id := range r.orden {
		if r.usuarios[id].Email.Equals(email) {
			return r.usuarios[id], nil
		}
	}
	return nil, nil
}

func (r *fakeUsuarioRepo) FindAllByEmpresa(_ context.Context, empresaID valueobject.ID, limit, offset int) ([]*entity.UsuarioEmpresa, error) {
	var propios []*entity.UsuarioEmpresa
	for _, id := range r.orden {
		if r.usuarios[id].EmpresaID.Equals(empresaID) {
			propios = append(propios, r.usuarios[id])
		}
	}
	var out []*entity.UsuarioEmpresa
	for i := offset; i < len(propios) && len(out) < limit; i++ {
		out = append(out, propios[i])
	}
	return out, nil
}

func (r *fakeUsuarioRepo) CountByEmpresa(_ context.Context, empresaID valueobject.ID) (int, error) {
	n := 0
	for _, u := range r.usuarios {
		if u.EmpresaID.Equals(empresaID) {
			n++
		}
	}
	return n, nil
}

func (r *fakeUsuarioRepo) CountActivosByEmpresa(_ context.Context, empresaID valueobject.ID) (int, error) {
	n := 0
	for _, u := range r.usuarios {
		if u.EmpresaID.Equals(empresaID) && u.Activo {
			n++
		}
	}
	return n, nil
}

func (r *fakeUsuarioRepo) ExistsByEmail(ctx context.Context, email valueobject.Email) (bool, error) {
	u, _ := r.FindByEmail(ctx, email)
	return u != nil, nil
}

func (r *fakeUsuarioRepo) ExistsByEmailExcludingID(_ context.Context, email valueobject.Email, excludeID valueobject.ID) (bool, error) {
	for _, u := range r.usuarios {
		if u.Email.Equals(email) && !u.ID.Equals(excludeID) {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUsuarioRepo) Delete(_ context.Context, id valueobject.ID) error {
	delete(r.usuarios, id.Value())
	for i, v := range r.orden {
		if v == id.Value() {
			r.orden = append(r.orden[:i], r.orden[i+1:]...)
			break
		}
	}
	return nil
}

type fakeHistorialRepo struct {
	registros []*entity.HistorialSuscripcion
}

func newFakeHistorialRepo() *fakeHistorialRepo { return &fakeHistorialRepo{} }

func (r *fakeHistorialRepo) Save(_ context.Context, h *entity.HistorialSuscripcion) error {
	r.registros = append(r.registros, h)
	return nil
}

func (r *fakeHistorialRepo) FindByEmpresa(_ context.Context, empresaID valueobject.ID) ([]*entity.HistorialSuscripcion, error) {
	var out []*entity.HistorialSuscripcion
	for i := len(r.registros) - 1; i >= 0; i-- {
		if r.registros[i].EmpresaID.Equals(empresaID) {
			out = append(out, r.registros[i])
		}
	}
	return out, nil
}

func (r *fakeHistorialRepo) CerrarVigente(_ context.Context, empresaID valueobject.ID, fechaFin time.Time) error {
	for _, h := range r.registros {
		if h.EmpresaID.Equals(empresaID) && h.FechaFin == nil {
			fin := fechaFin
			h.FechaFin = &fin
		}
	}
	return nil
}

type fakeTxRunner struct {
	empresaRepo   *fakeEmpresaRepo
	historialRepo *fakeHistorialRepo
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	empresaRepo repository.EmpresaRepository,
	historialRepo repository.HistorialRepository,
) error) error {
	return fn(r.empresaRepo, r.historialRepo)
}

// fakeTokenStore lista de revocación en memoria.
type fakeTokenStore struct {
	revocados map[string]bool
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{revocados: make(map[string]bool)}
}

func (s *fakeTokenStore) Revoke(_ context.Context, jti string, _ time.Duration) error {
	s.revocados[jti] = true
	return nil
}

func (s *fakeTokenStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	return s.revocados[jti], nil
}
