package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/shenikar/shelter_guard/internal/models"
	"github.com/shenikar/shelter_guard/internal/webhook"
	"github.com/sirupsen/logrus"
)

//go:generate mockgen -source=bottle.go -destination=mocks/bottle_mock.go -package=mocks

// DefaultResponseMessage подставляется, если волонтер не написал сообщение
const DefaultResponseMessage = "志愿者已接单"

// BottleRepository определяет контракт для работы с бд просьб и ответов
type BottleRepository interface {
	Create(ctx context.Context, bottle *models.Bottle) error
	// Exists проверяет наличие просьбы без загрузки ответов
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// ListOpen и ListByOwner возвращают просьбы от новых к старым вместе с ответами
	ListOpen(ctx context.Context) ([]*models.Bottle, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Bottle, error)
	CreateResponse(ctx context.Context, response *models.BottleResponse) error
}

// BottleService определяет контракт журнала просьб и стола ответов
type BottleService interface {
	SubmitBottle(ctx context.Context, caller *models.Account, content string) (*models.Bottle, error)
	ListBottles(ctx context.Context, caller *models.Account) ([]*models.Bottle, error)
	AttachResponse(ctx context.Context, caller *models.Account, bottleID uuid.UUID, contactInfo, message string) (*models.BottleResponse, error)
}

type bottleService struct {
	repo      BottleRepository
	accounts  AccountRepository
	roles     RoleChecker
	logger    *logrus.Logger
	publisher webhook.WebhookPublisher
}

func NewBottleService(repo BottleRepository, accounts AccountRepository, roles RoleChecker, logger *logrus.Logger, publisher webhook.WebhookPublisher) BottleService {
	return &bottleService{
		repo:      repo,
		accounts:  accounts,
		roles:     roles,
		logger:    logger,
		publisher: publisher,
	}
}

// SubmitBottle сохраняет новую просьбу со статусом open.
//
// Если вставка упала на внешнем ключе (профиль еще не создан), выполняется
// ровно одна попытка восстановления: создать минимальный профиль и повторить
// вставку. Вторая ошибка возвращается как есть.
func (s *bottleService) SubmitBottle(ctx context.Context, caller *models.Account, content string) (*models.Bottle, error) {
	if caller == nil || caller.ID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":    "bottle",
		"method":     "SubmitBottle",
		"account_id": caller.ID,
	})
	// роль из токена, а не AccountHasRole: профиля может не быть, и тогда
	// проверка по профилю закрыла бы путь к его восстановлению ниже
	if caller.Role == models.RoleProvider {
		log.Warn("Provider attempted to submit a bottle")
		return nil, ErrRoleNotPermitted
	}
	if strings.TrimSpace(content) == "" {
		return nil, validationError("content must not be empty")
	}

	bottle := &models.Bottle{
		UserID:  caller.ID,
		Content: content,
		Status:  models.BottleStatusOpen,
	}

	err := s.repo.Create(ctx, bottle)
	if err != nil {
		if !errors.Is(err, ErrConstraintViolation) {
			log.WithError(err).Error("Failed to create bottle in repository")
			return nil, fmt.Errorf("service: could not submit bottle: %w", err)
		}

		log.WithError(err).Warn("Bottle owner has no profile, repairing")
		if err := s.repairProfile(ctx, caller); err != nil {
			log.WithError(err).Error("Failed to repair profile")
			return nil, fmt.Errorf("service: could not repair profile: %w", err)
		}
		if err := s.repo.Create(ctx, bottle); err != nil {
			log.WithError(err).Error("Failed to create bottle after profile repair")
			return nil, fmt.Errorf("service: could not submit bottle after profile repair: %w", err)
		}
	}

	log.WithField("bottle_id", bottle.ID).Info("Bottle submitted")
	s.publish(ctx, log, webhook.WebhookEvent{
		Type:      webhook.EventBottleCreated,
		AccountID: caller.ID,
		Bottle:    bottle,
	})
	return bottle, nil
}

// repairProfile создает минимальную строку профиля для владельца просьбы
func (s *bottleService) repairProfile(ctx context.Context, caller *models.Account) error {
	return s.accounts.EnsureProfile(ctx, &models.Account{
		ID:   caller.ID,
		Role: models.RoleSeeker,
	})
}

// ListBottles: волонтер видит все открытые просьбы, ищущий - только свои.
// Ответы в каждой просьбе идут от старых к новым.
func (s *bottleService) ListBottles(ctx context.Context, caller *models.Account) ([]*models.Bottle, error) {
	if caller == nil || caller.ID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":    "bottle",
		"method":     "ListBottles",
		"account_id": caller.ID,
		"role":       caller.Role,
	})

	var (
		bottles []*models.Bottle
		err     error
	)
	if caller.Role == models.RoleProvider {
		if err := s.roles.AccountHasRole(ctx, caller.ID, models.RoleProvider); err != nil {
			return nil, err
		}
		bottles, err = s.repo.ListOpen(ctx)
	} else {
		bottles, err = s.repo.ListByOwner(ctx, caller.ID)
	}
	if err != nil {
		log.WithError(err).Error("Failed to list bottles from repository")
		return nil, fmt.Errorf("service: could not list bottles: %w", err)
	}

	for _, b := range bottles {
		if b.Responses == nil {
			b.Responses = []*models.BottleResponse{}
		}
		sort.SliceStable(b.Responses, func(i, j int) bool {
			return b.Responses[i].CreatedAt.Before(b.Responses[j].CreatedAt)
		})
	}

	log.WithField("count", len(bottles)).Info("Bottles listed")
	return bottles, nil
}

// AttachResponse добавляет ответ волонтера к существующей просьбе.
// Статус просьбы не проверяется и не меняется.
func (s *bottleService) AttachResponse(ctx context.Context, caller *models.Account, bottleID uuid.UUID, contactInfo, message string) (*models.BottleResponse, error) {
	if caller == nil || caller.ID == uuid.Nil {
		return nil, ErrUnauthenticated
	}
	log := s.logger.WithFields(logrus.Fields{
		"service":    "bottle",
		"method":     "AttachResponse",
		"account_id": caller.ID,
		"bottle_id":  bottleID,
	})

	if err := s.roles.AccountHasRole(ctx, caller.ID, models.RoleProvider); err != nil {
		return nil, err
	}
	if strings.TrimSpace(contactInfo) == "" {
		return nil, validationError("contact info must not be empty")
	}
	if strings.TrimSpace(message) == "" {
		message = DefaultResponseMessage
	}

	exists, err := s.repo.Exists(ctx, bottleID)
	if err != nil {
		log.WithError(err).Error("Failed to check bottle in repository")
		return nil, fmt.Errorf("service: could not attach response: %w", err)
	}
	if !exists {
		log.Warn("Attempted to respond to a non-existent bottle")
		return nil, fmt.Errorf("service: bottle %s: %w", bottleID, ErrNotFound)
	}

	response := &models.BottleResponse{
		BottleID:          bottleID,
		ProviderID:        caller.ID,
		ContactInfoShared: contactInfo,
		Message:           message,
	}
	if err := s.repo.CreateResponse(ctx, response); err != nil {
		if errors.Is(err, ErrConstraintViolation) {
			return nil, fmt.Errorf("service: bottle %s: %w", bottleID, ErrNotFound)
		}
		log.WithError(err).Error("Failed to create response in repository")
		return nil, fmt.Errorf("service: could not attach response: %w", err)
	}

	log.WithField("response_id", response.ID).Info("Response attached")
	s.publish(ctx, log, webhook.WebhookEvent{
		Type:      webhook.EventBottleResponded,
		AccountID: caller.ID,
		Response:  response,
	})
	return response, nil
}

// publish отправляет событие интеграциям; ошибка только логируется
func (s *bottleService) publish(ctx context.Context, log *logrus.Entry, event webhook.WebhookEvent) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).WithField("event_type", event.Type).Warn("Failed to publish webhook event")
	}
}
