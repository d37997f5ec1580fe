package main

import (
	"context"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/tu-usuario/suscripciones-api/internal/domain/entity"
	"github.com/tu-usuario/suscripciones-api/internal/domain/valueobject"
	"github.com/tu-usuario/suscripciones-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/suscripciones-api/pkg/config"
	"github.com/tu-usuario/suscripciones-api/pkg/logger"
)

// Siembra planes de demostración, una empresa y su usuario admin.
// Pensado para entornos locales; es idempotente por email.
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	planRepo := postgres.NewPlanRepository(pool)
	empresaRepo := postgres.NewEmpresaRepository(pool)
	usuarioRepo := postgres.NewUsuarioEmpresaRepository(pool)
	historialRepo := postgres.NewHistorialRepository(pool)

	planes := []struct {
		name     string
		amount   int64
		limit    int
		features []string
	}{
		{"Básico", 999, 5, []string{"Soporte por email", "1 GB de almacenamiento"}},
		{"Profesional", 2999, 25, []string{"Soporte prioritario", "10 GB de almacenamiento", "Reportes"}},
		{"Empresarial", 9999, 100, []string{"Soporte dedicado", "Almacenamiento ilimitado", "Reportes", "SSO"}},
	}

	var planBasico *entity.Plan
	for _, p := range planes {
		name, err := valueobject.NewPlanName(p.name)
		if err != nil {
			log.Fatal().Err(err).Str("plan", p.name).Msg("nombre de plan")
		}
		price, err := valueobject.NewMoney(p.amount, "USD")
		if err != nil {
			log.Fatal().Err(err).Str("plan", p.name).Msg("precio de plan")
		}
		limit, err := valueobject.NewUserLimit(p.limit)
		if err != nil {
			log.Fatal().Err(err).Str("plan", p.name).Msg("límite de plan")
		}
		features, err := valueobject.NewFeatures(p.features)
		if err != nil {
			log.Fatal().Err(err).Str("plan", p.name).Msg("features de plan")
		}

		plan := entity.NuevoPlan(name, price, limit, features)
		if err := planRepo.Save(ctx, plan); err != nil {
			log.Fatal().Err(err).Str("plan", p.name).Msg("guardar plan")
		}
		if planBasico == nil {
			planBasico = plan
		}
		log.Info().Str("id", plan.ID.Value()).Str("plan", p.name).Msg("plan creado")
	}

	empresaEmail, err := valueobject.NewEmail("demo@example.com")
	if err != nil {
		log.Fatal().Err(err).Msg("email de empresa")
	}
	if existente, err := empresaRepo.FindByEmail(ctx, empresaEmail); err != nil {
		log.Fatal().Err(err).Msg("buscar empresa demo")
	} else if existente != nil {
		log.Info().Str("id", existente.ID.Value()).Msg("la empresa demo ya existe")
		return
	}

	nombre, err := valueobject.NewEmpresaNombre("Empresa Demo S.A.")
	if err != nil {
		log.Fatal().Err(err).Msg("nombre de empresa")
	}
	empresa := entity.NuevaEmpresa(nombre, empresaEmail, planBasico.ID)
	if err := empresaRepo.Save(ctx, empresa); err != nil {
		log.Fatal().Err(err).Msg("guardar empresa")
	}
	historial := entity.NuevoHistorial(empresa.ID, planBasico.ID, "Alta inicial", planBasico.MonthlyPrice)
	if err := historialRepo.Save(ctx, historial); err != nil {
		log.Fatal().Err(err).Msg("guardar historial")
	}
	log.Info().Str("id", empresa.ID.Value()).Msg("empresa demo creada")

	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		adminPassword = "admin12345"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash de contraseña")
	}

	adminNombre, err := valueobject.NewUsuarioNombre("Admin Demo")
	if err != nil {
		log.Fatal().Err(err).Msg("nombre de admin")
	}
	adminEmail, err := valueobject.NewEmail("admin@example.com")
	if err != nil {
		log.Fatal().Err(err).Msg("email de admin")
	}
	admin := entity.NuevoUsuarioEmpresa(adminNombre, adminEmail, string(hash), empresa.ID, valueobject.RolAdministrador())
	if err := usuarioRepo.Save(ctx, admin); err != nil {
		log.Fatal().Err(err).Msg("guardar admin")
	}
	log.Info().Str("id", admin.ID.Value()).Str("email", adminEmail.Value()).Msg("usuario admin creado")
}
