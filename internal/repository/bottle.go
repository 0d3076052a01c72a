package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/shelter_guard/internal/models"
	"github.com/shenikar/shelter_guard/internal/service"
)

type BottleRepository struct {
	db *pgxpool.Pool
}

func NewBottleRepository(db *pgxpool.Pool) service.BottleRepository {
	return &BottleRepository{db: db}
}

// Create сохраняет просьбу; без профиля владельца вернет ErrConstraintViolation
func (r *BottleRepository) Create(ctx context.Context, bottle *models.Bottle) error {
	query := `
		INSERT INTO bottles (user_id, content, status)
		VALUES ($1, $2, $3) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		bottle.UserID,
		bottle.Content,
		bottle.Status,
	).Scan(&bottle.ID, &bottle.CreatedAt)
	return mapError("failed to create bottle", err)
}

// Exists проверяет наличие просьбы одним SELECT EXISTS
func (r *BottleRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM bottles WHERE id = $1);`
	if err := r.db.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, mapError("failed to check bottle existence", err)
	}
	return exists, nil
}

const (
	listOpenBottlesQuery = `
		SELECT id, user_id, content, status, created_at
		FROM bottles
		WHERE status = $1
		ORDER BY created_at DESC, id DESC;
	`
	listOwnerBottlesQuery = `
		SELECT id, user_id, content, status, created_at
		FROM bottles
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC;
	`
)

func (r *BottleRepository) ListOpen(ctx context.Context) ([]*models.Bottle, error) {
	return r.list(ctx, listOpenBottlesQuery, models.BottleStatusOpen)
}

func (r *BottleRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Bottle, error) {
	return r.list(ctx, listOwnerBottlesQuery, ownerID)
}

func (r *BottleRepository) list(ctx context.Context, query string, args ...any) ([]*models.Bottle, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, mapError("failed to list bottles", err)
	}
	bottles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Bottle, error) {
		b := &models.Bottle{}
		err := row.Scan(&b.ID, &b.UserID, &b.Content, &b.Status, &b.CreatedAt)
		return b, err
	})
	if err != nil {
		return nil, mapError("failed to scan bottle row", err)
	}
	if err := r.attachResponses(ctx, bottles); err != nil {
		return nil, err
	}
	return bottles, nil
}

// attachResponses подгружает ответы одним запросом для всех просьб
func (r *BottleRepository) attachResponses(ctx context.Context, bottles []*models.Bottle) error {
	if len(bottles) == 0 {
		return nil
	}
	ids := make([]uuid.UUID, 0, len(bottles))
	byID := make(map[uuid.UUID]*models.Bottle, len(bottles))
	for _, b := range bottles {
		b.Responses = []*models.BottleResponse{}
		ids = append(ids, b.ID)
		byID[b.ID] = b
	}

	query := `
		SELECT id, bottle_id, provider_id, contact_info_shared, message, created_at
		FROM bottle_responses
		WHERE bottle_id = ANY($1)
		ORDER BY created_at ASC, id ASC;
	`
	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		return mapError("failed to list bottle responses", err)
	}
	defer rows.Close()

	for rows.Next() {
		resp := &models.BottleResponse{}
		if err := rows.Scan(
			&resp.ID,
			&resp.BottleID,
			&resp.ProviderID,
			&resp.ContactInfoShared,
			&resp.Message,
			&resp.CreatedAt,
		); err != nil {
			return mapError("failed to scan bottle response row", err)
		}
		if b, ok := byID[resp.BottleID]; ok {
			b.Responses = append(b.Responses, resp)
		}
	}
	if err := rows.Err(); err != nil {
		return mapError("error bottle responses iteration", err)
	}
	return nil
}

// CreateResponse добавляет ответ; статус просьбы не меняется
func (r *BottleRepository) CreateResponse(ctx context.Context, response *models.BottleResponse) error {
	query := `
		INSERT INTO bottle_responses (bottle_id, provider_id, contact_info_shared, message)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		response.BottleID,
		response.ProviderID,
		response.ContactInfoShared,
		response.Message,
	).Scan(&response.ID, &response.CreatedAt)
	return mapError("failed to create bottle response", err)
}
