package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/shelter_guard/internal/service"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	identityService service.IdentityService
	bottleService   service.BottleService
	shelterService  service.ShelterService
	logger          *logrus.Logger
	validate        *validator.Validate
}

func NewHandler(identityService service.IdentityService, bottleService service.BottleService, shelterService service.ShelterService, logger *logrus.Logger) *Handler {
	return &Handler{
		identityService: identityService,
		bottleService:   bottleService,
		shelterService:  shelterService,
		logger:          logger,
		validate:        validator.New(),
	}
}

// bindAndValidate читает JSON тело и проверяет его; при ошибке ответ уже записан
func (h *Handler) bindAndValidate(c *gin.Context, log *logrus.Entry, input any) bool {
	if err := c.ShouldBindJSON(input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

// errorStatus сопоставляет вид ошибки сервиса с HTTP статусом
func errorStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrRoleNotPermitted):
		return http.StatusForbidden
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrStoreUnavailable), errors.Is(err, service.ErrConstraintViolation):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// writeError отвечает одним сообщением; детали 5xx остаются в логах
func (h *Handler) writeError(c *gin.Context, log *logrus.Entry, err error) {
	status := errorStatus(err)
	message := err.Error()
	switch status {
	case http.StatusServiceUnavailable:
		message = "service temporarily unavailable"
	case http.StatusInternalServerError:
		message = "internal server error"
	}

	if status >= http.StatusInternalServerError {
		log.WithError(err).Error("Request failed")
	} else {
		log.WithError(err).Warn("Request rejected")
	}
	c.JSON(status, gin.H{"error": message})
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
