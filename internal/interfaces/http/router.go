package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/suscripciones-api/internal/application/auth"
	"github.com/tu-usuario/suscripciones-api/internal/application/usecase"
	"github.com/tu-usuario/suscripciones-api/internal/domain/valueobject"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	PlanUC     *usecase.PlanUseCase
	EmpresaUC  *usecase.EmpresaUseCase
	UsuarioUC  *usecase.UsuarioUseCase
	AuthUC     *auth.UseCase
	TokenStore auth.TokenStore
	JWTSecret  string
}

// Router registra las rutas de la API bajo /api/v1.
// Las lecturas son públicas; las mutaciones requieren Bearer Token y las de
// planes además rol admin.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api/v1")

	authMW := AuthMiddleware(deps.JWTSecret, deps.TokenStore)
	adminMW := RequireRole(valueobject.RolAdmin)

	// Auth
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/logout", authMW, authHandler.Logout)

	// Planes (lecturas públicas, mutaciones solo admin)
	planes := api.Group("/planes")
	planHandler := NewPlanHandler(deps.PlanUC)
	planes.Get("/", planHandler.List)
	planes.Get("/:id", planHandler.GetByID)
	planes.Post("/", authMW, adminMW, planHandler.Create)
	planes.Put("/:id", authMW, adminMW, planHandler.Update)
	planes.Delete("/:id", authMW, adminMW, planHandler.Delete)

	// Empresas
	empresas := api.Group("/empresas")
	empresaHandler := NewEmpresaHandler(deps.EmpresaUC)
	empresas.Get("/", empresaHandler.List)
	empresas.Get("/:id", empresaHandler.GetByID)
	empresas.Get("/:id/historial", empresaHandler.Historial)
	empresas.Post("/", authMW, empresaHandler.Create)
	empresas.Put("/:id", authMW, empresaHandler.Update)
	empresas.Delete("/:id", authMW, empresaHandler.Delete)

	// Usuarios de empresa (anidados)
	usuarios := api.Group("/empresas/:empresa_id/usuarios")
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Get("/:id", usuarioHandler.GetByID)
	usuarios.Post("/", authMW, usuarioHandler.Create)
	usuarios.Put("/:id", authMW, usuarioHandler.Update)
	usuarios.Delete("/:id", authMW, usuarioHandler.Delete)
}
