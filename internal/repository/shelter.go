package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/shelter_guard/internal/models"
	"github.com/shenikar/shelter_guard/internal/service"
)

const (
	shelterListCacheKey = "shelters:all"
	// счетчик поколений кэша; растет при каждой инвалидации
	shelterGenerationKey = "shelters:gen"
)

type ShelterRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
	cacheTTL    time.Duration
}

func NewShelterRepository(db *pgxpool.Pool, redisClient *redis.Client, cacheTTL time.Duration) service.ShelterRepository {
	return &ShelterRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

func (r *ShelterRepository) Create(ctx context.Context, shelter *models.Shelter) error {
	query := `
		INSERT INTO shelters (provider_id, name, address, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		shelter.ProviderID,
		shelter.Name,
		shelter.Address,
		shelter.Latitude,
		shelter.Longitude,
	).Scan(&shelter.ID, &shelter.CreatedAt)
	return mapError("failed to create shelter", err)
}

// id разрешает совпадения created_at
const listSheltersQuery = `
	SELECT id, provider_id, name, address, latitude, longitude, created_at
	FROM shelters
	ORDER BY created_at ASC, id ASC;
`

// List возвращает все укрытия без фильтрации
func (r *ShelterRepository) List(ctx context.Context) ([]*models.Shelter, error) {
	rows, err := r.db.Query(ctx, listSheltersQuery)
	if err != nil {
		return nil, mapError("failed to list shelters", err)
	}
	defer rows.Close()

	shelters := make([]*models.Shelter, 0)
	for rows.Next() {
		s := &models.Shelter{}
		if err := rows.Scan(
			&s.ID,
			&s.ProviderID,
			&s.Name,
			&s.Address,
			&s.Latitude,
			&s.Longitude,
			&s.CreatedAt,
		); err != nil {
			return nil, mapError("failed to scan shelter row", err)
		}
		shelters = append(shelters, s)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("error shelter list iteration", err)
	}
	return shelters, nil
}

// GetListFromCache пытается получить список укрытий из Redis
func (r *ShelterRepository) GetListFromCache(ctx context.Context) ([]*models.Shelter, error) {
	val, err := r.redisClient.Get(ctx, shelterListCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get shelters from cache: %w", err)
	}

	shelters := make([]*models.Shelter, 0)
	if err := json.Unmarshal(val, &shelters); err != nil {
		return nil, fmt.Errorf("failed to unmarshal shelters from cache: %w", err)
	}
	return shelters, nil
}

// ListCacheGeneration читает текущее поколение кэша; отсутствие ключа означает 0
func (r *ShelterRepository) ListCacheGeneration(ctx context.Context) (int64, error) {
	gen, err := readGeneration(ctx, r.redisClient)
	if err != nil {
		return 0, fmt.Errorf("failed to get shelter cache generation: %w", err)
	}
	return gen, nil
}

// SetListCache пишет список, только если поколение не изменилось с момента чтения.
// Иначе запись молча пропускается: список мог устареть.
func (r *ShelterRepository) SetListCache(ctx context.Context, generation int64, shelters []*models.Shelter) error {
	val, err := json.Marshal(shelters)
	if err != nil {
		return fmt.Errorf("failed to marshal shelters for cache: %w", err)
	}

	err = r.redisClient.Watch(ctx, func(tx *redis.Tx) error {
		current, err := readGeneration(ctx, tx)
		if err != nil {
			return err
		}
		if current != generation {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, shelterListCacheKey, val, r.cacheTTL)
			return nil
		})
		return err
	}, shelterGenerationKey)
	if errors.Is(err, redis.TxFailedErr) {
		// поколение сменилось между WATCH и EXEC
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to set shelters in cache: %w", err)
	}
	return nil
}

// InvalidateListCache сдвигает поколение и удаляет список после регистрации нового укрытия
func (r *ShelterRepository) InvalidateListCache(ctx context.Context) error {
	_, err := r.redisClient.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, shelterGenerationKey)
		pipe.Del(ctx, shelterListCacheKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate shelter cache: %w", err)
	}
	return nil
}

func readGeneration(ctx context.Context, c redis.Cmdable) (int64, error) {
	gen, err := c.Get(ctx, shelterGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}
