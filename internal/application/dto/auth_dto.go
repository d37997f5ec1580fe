package dto

import "github.com/tu-usuario/suscripciones-api/internal/domain/entity"

// LoginRequest credenciales de acceso.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthUser datos del usuario autenticado incluidos en la respuesta de login.
type AuthUser struct {
	ID     string `json:"id"`
	Nombre string `json:"nombre"`
	Email  string `json:"email"`
	Rol    string `json:"rol"`
}

// LoginResponse respuesta de login exitoso.
type LoginResponse struct {
	AccessToken string   `json:"access_token"`
	TokenType   string   `json:"token_type"`
	User        AuthUser `json:"user"`
}

// NewLoginResponse arma la respuesta de login para el usuario autenticado.
func NewLoginResponse(token string, u *entity.UsuarioEmpresa) LoginResponse {
	return LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		User: AuthUser{
			ID:     u.ID.Value(),
			Nombre: u.Nombre.Value(),
			Email:  u.Email.Value(),
			Rol:    u.Rol.Value(),
		},
	}
}

// MessageResponse respuesta simple con mensaje (logout, deletes).
type MessageResponse struct {
	Message string `json:"message"`
}
