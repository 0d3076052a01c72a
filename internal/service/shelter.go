package service

import (
	"context"
	"fmt"

	"github.com/shenikar/shelter_guard/internal/geo"
	"github.com/shenikar/shelter_guard/internal/models"
	"github.com/shenikar/shelter_guard/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=shelter.go -destination=mocks/shelter_mock.go -package=mocks

// ShelterRepository определяет контракт для работы с бд укрытий и кешем списка
type ShelterRepository interface {
	Create(ctx context.Context, shelter *models.Shelter) error
	// List возвращает все укрытия в порядке добавления
	List(ctx context.Context) ([]*models.Shelter, error)
	// GetListFromCache возвращает nil, nil при промахе кеша
	GetListFromCache(ctx context.Context) ([]*models.Shelter, error)
	// ListCacheGeneration возвращает поколение кеша; InvalidateListCache его увеличивает
	ListCacheGeneration(ctx context.Context) (int64, error)
	// SetListCache пропускает запись, если поколение уже не равно generation
	SetListCache(ctx context.Context, generation int64, shelters []*models.Shelter) error
	InvalidateListCache(ctx context.Context) error
}

// ShelterService определяет контракт реестра укрытий и ранжирования по расстоянию
type ShelterService interface {
	RegisterShelter(ctx context.Context, caller *models.Account, name, address string, coordinate *geo.Coordinate) (*models.Shelter, error)
	ListShelters(ctx context.Context) ([]*models.Shelter, error)
	NearbyShelters(ctx context.Context, source geo.CoordinateSource) (*geo.Ranking, error)
}

type shelterService struct {
	repo      ShelterRepository
	roles     RoleChecker
	logger    *logrus.Logger
	publisher webhook.WebhookPublisher
}

func NewShelterService(repo ShelterRepository, roles RoleChecker, logger *logrus.Logger, publisher webhook.WebhookPublisher) ShelterService {
	return &shelterService{
		repo:      repo,
		roles:     roles,
		logger:    logger,
		publisher: publisher,
	}
}

// RegisterShelter сохраняет укрытие волонтера. Название и адрес не проверяются,
// повторная регистрация той же точки создает отдельную запись.
func (s *shelterService) RegisterShelter(ctx context.Context, caller *models.Account, name, address string, coordinate *geo.Coordinate) (*models.Shelter, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":    "shelter",
		"method":     "RegisterShelter",
		"account_id": caller.ID,
	})

	if err := s.roles.AccountHasRole(ctx, caller.ID, models.RoleProvider); err != nil {
		return nil, err
	}
	if coordinate == nil {
		return nil, validationError("coordinate is required")
	}
	if err := coordinate.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	shelter := &models.Shelter{
		ProviderID: caller.ID,
		Name:       name,
		Address:    address,
		Latitude:   coordinate.Latitude,
		Longitude:  coordinate.Longitude,
	}
	if err := s.repo.Create(ctx, shelter); err != nil {
		log.WithError(err).Error("Failed to create shelter in repository")
		return nil, fmt.Errorf("service: could not register shelter: %w", err)
	}

	if err := s.repo.InvalidateListCache(ctx); err != nil {
		log.WithError(err).Warn("Failed to invalidate shelter list cache")
	}

	log.WithField("shelter_id", shelter.ID).Info("Shelter registered")
	if s.publisher != nil {
		event := webhook.WebhookEvent{
			Type:      webhook.EventShelterRegistered,
			AccountID: caller.ID,
			Shelter:   shelter,
		}
		if err := s.publisher.Publish(ctx, event); err != nil {
			log.WithError(err).Warn("Failed to publish webhook event")
		}
	}
	return shelter, nil
}

// ListShelters возвращает все укрытия без фильтрации, сначала пробуя кеш
func (s *shelterService) ListShelters(ctx context.Context) ([]*models.Shelter, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "shelter",
		"method":  "ListShelters",
	})

	cached, err := s.repo.GetListFromCache(ctx)
	if err != nil {
		log.WithError(err).Warn("Failed to read shelter list cache")
	} else if cached != nil {
		log.WithField("count", len(cached)).Debug("Shelters served from cache")
		return cached, nil
	}

	// поколение читается до List, чтобы не положить в кеш список старше инвалидации
	generation, genErr := s.repo.ListCacheGeneration(ctx)
	if genErr != nil {
		log.WithError(genErr).Warn("Failed to read shelter cache generation")
	}

	shelters, err := s.repo.List(ctx)
	if err != nil {
		log.WithError(err).Error("Failed to list shelters from repository")
		return nil, fmt.Errorf("service: could not list shelters: %w", err)
	}

	if genErr == nil {
		if err := s.repo.SetListCache(ctx, generation, shelters); err != nil {
			log.WithError(err).Warn("Failed to cache shelter list")
		}
	}
	log.WithField("count", len(shelters)).Info("Shelters listed")
	return shelters, nil
}

// NearbyShelters ранжирует все укрытия от координаты источника.
// Без координаты используется geo.DefaultCityCenter.
func (s *shelterService) NearbyShelters(ctx context.Context, source geo.CoordinateSource) (*geo.Ranking, error) {
	origin, fallback := geo.ResolveOrigin(ctx, source)
	log := s.logger.WithFields(logrus.Fields{
		"service":  "shelter",
		"method":   "NearbyShelters",
		"fallback": fallback,
	})

	shelters, err := s.ListShelters(ctx)
	if err != nil {
		return nil, err
	}

	ranked := geo.RankByDistance(origin, shelters)
	log.WithField("count", len(ranked)).Info("Shelters ranked by distance")
	return &geo.Ranking{
		Origin:   origin,
		Fallback: fallback,
		Shelters: ranked,
	}, nil
}
