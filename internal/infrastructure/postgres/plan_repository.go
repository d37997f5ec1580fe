package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tu-usuario/suscripciones-api/internal/domain/entity"
	"github.com/tu-usuario/suscripciones-api/internal/domain/repository"
	"github.com/tu-usuario/suscripciones-api/internal/domain/valueobject"
)

// Asegura que PlanRepo implementa repository.PlanRepository.
var _ repository.PlanRepository = (*PlanRepo)(nil)

// PlanRepo implementación del puerto PlanRepository sobre PostgreSQL (usable con pool o tx).
type PlanRepo struct {
	q Querier
}

// NewPlanRepository construye el adaptador de persistencia para planes. Pasar pool o tx (Querier).
func NewPlanRepository(q Querier) *PlanRepo {
	return &PlanRepo{q: q}
}

// Save persiste el plan (upsert por ID).
func (r *PlanRepo) Save(ctx context.Context, plan *entity.Plan) error {
	features, err := json.Marshal(plan.Features.Values())
	if err != nil {
		return fmt.Errorf("marshal features: %w", err)
	}
	query := `
		INSERT INTO planes (id, name, monthly_price_amount, monthly_price_currency, user_limit, features, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			monthly_price_amount = EXCLUDED.monthly_price_amount,
			monthly_price_currency = EXCLUDED.monthly_price_currency,
			user_limit = EXCLUDED.user_limit,
			features = EXCLUDED.features,
			updated_at = EXCLUDED.updated_at`
	_, err = r.q.Exec(ctx, query,
		plan.ID.Value(), plan.Name.Value(),
		plan.MonthlyPrice.Amount(), plan.MonthlyPrice.Currency(),
		plan.UserLimit.Value(), features,
		plan.CreatedAt, plan.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("save plan: %w", err)
	}
	return nil
}

const planColumns = `id, name, monthly_price_amount, monthly_price_currency, user_limit, features, created_at, updated_at`

// FindByID obtiene un plan por ID. Devuelve nil, nil si no existe.
func (r *PlanRepo) FindByID(ctx context.Context, id valueobject.ID) (*entity.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM planes WHERE id = $1`
	plan, err := scanPlan(r.q.QueryRow(ctx, query, id.Value()))
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get plan: %w", err)
	}
	return plan, nil
}

// FindAll devuelve planes con paginación, ordenados por fecha de creación.
func (r *PlanRepo) FindAll(ctx context.Context, limit, offset int) ([]*entity.Plan, error) {
	query := `SELECT ` + planColumns + ` FROM planes ORDER BY created_at ASC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list planes: %w", err)
	}
	defer rows.Close()

	var list []*entity.Plan
	for rows.Next() {
		plan, err := scanPlan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan plan: %w", err)
		}
		list = append(list, plan)
	}
	return list, rows.Err()
}

// Count devuelve el total de planes.
func (r *PlanRepo) Count(ctx context.Context) (int, error) {
	var total int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM planes`).Scan(&total); err != nil {
		return 0, fmt.Errorf("count planes: %w", err)
	}
	return total, nil
}

// Exists informa si existe un plan con el ID dado.
func (r *PlanRepo) Exists(ctx context.Context, id valueobject.ID) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM planes WHERE id = $1)`, id.Value()).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists plan: %w", err)
	}
	return exists, nil
}

// Delete elimina un plan por ID.
func (r *PlanRepo) Delete(ctx context.Context, id valueobject.ID) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM planes WHERE id = $1`, id.Value()); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}
	return nil
}

// scanPlan reconstruye la entidad desde una fila, rehidratando los value objects.
func scanPlan(row scannable) (*entity.Plan, error) {
	var (
		id, name, currency string
		amount             int64
		limit              int
		featuresJSON       []byte
		createdAt          time.Time
		updatedAt          *time.Time
	)
	if err := row.Scan(&id, &name, &amount, &currency, &limit, &featuresJSON, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	planID, err := valueobject.NewID(id)
	if err != nil {
		return nil, err
	}
	planName, err := valueobject.NewPlanName(name)
	if err != nil {
		return nil, err
	}
	price, err := valueobject.NewMoney(amount, currency)
	if err != nil {
		return nil, err
	}
	userLimit, err := valueobject.NewUserLimit(limit)
	if err != nil {
		return nil, err
	}
	var rawFeatures []string
	if len(featuresJSON) > 0 {
		if err := json.Unmarshal(featuresJSON, &rawFeatures); err != nil {
			return nil, fmt.Errorf("unmarshal features: %w", err)
		}
	}
	features, err := valueobject.NewFeatures(rawFeatures)
	if err != nil {
		return nil, err
	}

	return &entity.Plan{
		ID:           planID,
		Name:         planName,
		MonthlyPrice: price,
		UserLimit:    userLimit,
		Features:     features,
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}, nil
}

// scannable cubre pgx.Row y pgx.Rows para compartir los helpers de scan.
type scannable interface {
	Scan(dest ...any) error
}
