package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/suscripciones-api/internal/application/dto"
	"github.com/tu-usuario/suscripciones-api/internal/domain"
	"github.com/tu-usuario/suscripciones-api/internal/domain/repository"
	"github.com/tu-usuario/suscripciones-api/internal/domain/valueobject"
	"github.com/tu-usuario/suscripciones-api/pkg/jwt"
)

// TokenStore lista de revocación de tokens. La implementación vive en
// infrastructure (Redis); el TTL acota la vida de cada entrada a la
// expiración natural del token.
type TokenStore interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Config parámetros de emisión de tokens.
type Config struct {
	Secret     string
	Issuer     string
	Expiration int // minutos
}

// UseCase login y logout con JWT firmado y revocación por jti.
type UseCase struct {
	usuarioRepo repository.UsuarioEmpresaRepository
	tokens      TokenStore
	cfg         Config
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(usuarioRepo repository.UsuarioEmpresaRepository, tokens TokenStore, cfg Config) *UseCase {
	return &UseCase{usuarioRepo: usuarioRepo, tokens: tokens, cfg: cfg}
}

// Login autentica por email y contraseña y emite un token de acceso.
// Credenciales incorrectas devuelven ErrUnauthorized sin distinguir si el
// email existe. Una cuenta desactivada devuelve ErrForbidden.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	email, err := valueobject.NewEmail(in.Email)
	if err != nil {
		return nil, domain.ErrUnauthorized
	}

	usuario, err := uc.usuarioRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(in.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, domain.ErrUnauthorized
		}
		return nil, fmt.Errorf("compare password: %w", err)
	}
	if !usuario.Activo {
		return nil, fmt.Errorf("%w: la cuenta está desactivada", domain.ErrForbidden)
	}

	token, err := jwt.Generate(uc.cfg.Secret, usuario.ID.Value(), usuario.EmpresaID.Value(),
		usuario.Rol.Value(), uc.cfg.Issuer, uc.cfg.Expiration)
	if err != nil {
		return nil, fmt.Errorf("generate token: %w", err)
	}

	resp := dto.NewLoginResponse(token, usuario)
	return &resp, nil
}

// Logout revoca el token actual por su jti. El token deja de ser válido de
// inmediato aunque no haya expirado.
func (uc *UseCase) Logout(ctx context.Context, claims *jwt.Claims) error {
	if claims == nil || claims.ID == "" {
		return domain.ErrUnauthorized
	}
	ttl := time.Duration(0)
	if claims.ExpiresAt != nil {
		ttl = time.Until(claims.ExpiresAt.Time)
	}
	return uc.tokens.Revoke(ctx, claims.ID, ttl)
}
