package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/suscripciones-api/internal/application/auth"
	"github.com/tu-usuario/suscripciones-api/internal/application/dto"
	"github.com/tu-usuario/suscripciones-api/internal/domain"
	"github.com/tu-usuario/suscripciones-api/internal/domain/entity"
	"github.com/tu-usuario/suscripciones-api/internal/domain/valueobject"
	pkgjwt "github.com/tu-usuario/suscripciones-api/pkg/jwt"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testIssuer   = "suscripciones-api-test"
	testPassword = "secreto123"
)

// fakeUsuarioRepo solo implementa lo que Login necesita; el resto devuelve ceros.
type fakeUsuarioRepo struct {
	porEmail map[string]*entity.UsuarioEmpresa
}

func (r *fakeUsuarioRepo) Save(context.Context, *entity.UsuarioEmpresa) error { return nil }
func (r *fakeUsuarioRepo) FindByID(context.Context, valueobject.ID) (*entity.UsuarioEmpresa, error) {
	return nil, nil
}
func (r *fakeUsuarioRepo) FindByEmail(_ context.Context, email valueobject.Email) (*entity.UsuarioEmpresa, error) {
	return r.porEmail[email.Value()], nil
}
func (r *fakeUsuarioRepo) FindAllByEmpresa(context.Context, valueobject.ID, int, int) ([]*entity.UsuarioEmpresa, error) {
	return nil, nil
}
func (r *fakeUsuarioRepo) CountByEmpresa(context.Context, valueobject.ID) (int, error) {
	return 0, nil
}
func (r *fakeUsuarioRepo) CountActivosByEmpresa(context.Context, valueobject.ID) (int, error) {
	return 0, nil
}
func (r *fakeUsuarioRepo) ExistsByEmail(context.Context, valueobject.Email) (bool, error) {
	return false, nil
}
func (r *fakeUsuarioRepo) ExistsByEmailExcludingID(context.Context, valueobject.Email, valueobject.ID) (bool, error) {
	return false, nil
}
func (r *fakeUsuarioRepo) Delete(context.Context, valueobject.ID) error { return nil }

// fakeTokenStore lista de revocación en memoria.
type fakeTokenStore struct {
	revocados map[string]time.Duration
}

func newFakeTokenStore() *fakeTokenStore {
	return &fakeTokenStore{revocados: make(map[string]time.Duration)}
}

func (s *fakeTokenStore) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	s.revocados[jti] = ttl
	return nil
}

func (s *fakeTokenStore) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := s.revocados[jti]
	return ok, nil
}

func usuarioConPassword(t *testing.T, email string, activo bool) *entity.UsuarioEmpresa {
	t.Helper()
	nombre, err := valueobject.NewUsuarioNombre("María Pérez")
	require.NoError(t, err)
	mail, err := valueobject.NewEmail(email)
	require.NoError(t, err)
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	u := entity.NuevoUsuarioEmpresa(nombre, mail, string(hash), valueobject.GenerateID(), valueobject.RolAdministrador())
	u.Activo = activo
	return u
}

func nuevoAuthUC(t *testing.T, usuarios ...*entity.UsuarioEmpresa) (*auth.UseCase, *fakeTokenStore) {
	t.Helper()
	repo := &fakeUsuarioRepo{porEmail: make(map[string]*entity.UsuarioEmpresa)}
	for _, u := range usuarios {
		repo.porEmail[u.Email.Value()] = u
	}
	tokens := newFakeTokenStore()
	uc := auth.NewUseCase(repo, tokens, auth.Config{
		Secret:     testSecret,
		Issuer:     testIssuer,
		Expiration: 60,
	})
	return uc, tokens
}

func TestLogin_Exitoso(t *testing.T) {
	u := usuarioConPassword(t, "admin@example.com", true)
	uc, _ := nuevoAuthUC(t, u)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, u.ID.Value(), out.User.ID)
	assert.Equal(t, valueobject.RolAdmin, out.User.Rol)

	// El token emitido debe ser parseable y llevar los claims del usuario
	claims, err := pkgjwt.Parse(testSecret, out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID.Value(), claims.UserID)
	assert.Equal(t, u.EmpresaID.Value(), claims.EmpresaID)
	assert.Equal(t, valueobject.RolAdmin, claims.Rol)
	assert.NotEmpty(t, claims.ID, "el token lleva jti para poder revocarlo")
}

func TestLogin_PasswordIncorrecta(t *testing.T) {
	u := usuarioConPassword(t, "admin@example.com", true)
	uc, _ := nuevoAuthUC(t, u)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "incorrecta",
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_EmailInexistente(t *testing.T) {
	uc, _ := nuevoAuthUC(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "nadie@example.com",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized, "no se distingue email inexistente de password incorrecta")
}

func TestLogin_EmailInvalido(t *testing.T) {
	uc, _ := nuevoAuthUC(t)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "no-es-un-email",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestLogin_CuentaDesactivada(t *testing.T) {
	u := usuarioConPassword(t, "admin@example.com", false)
	uc, _ := nuevoAuthUC(t, u)

	_, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@example.com",
		Password: testPassword,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestLogout_RevocaElJTI(t *testing.T) {
	u := usuarioConPassword(t, "admin@example.com", true)
	uc, tokens := nuevoAuthUC(t, u)

	out, err := uc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@example.com",
		Password: testPassword,
	})
	require.NoError(t, err)

	claims, err := pkgjwt.Parse(testSecret, out.AccessToken)
	require.NoError(t, err)

	require.NoError(t, uc.Logout(context.Background(), claims))

	revocado, err := tokens.IsRevoked(context.Background(), claims.ID)
	require.NoError(t, err)
	assert.True(t, revocado)

	ttl := tokens.revocados[claims.ID]
	assert.Greater(t, ttl, time.Duration(0), "la entrada expira junto con el token")
}

func TestLogout_SinClaims(t *testing.T) {
	uc, _ := nuevoAuthUC(t)

	err := uc.Logout(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}
