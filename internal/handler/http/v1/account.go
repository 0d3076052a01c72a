package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/shelter_guard/internal/models"
	"github.com/shenikar/shelter_guard/internal/service"
)

// @Summary Sign up
// @Description Create an account with a role. Providers must choose a sub role.
// @Tags Auth
// @Accept json
// @Produce json
// @Param account body SignUpRequest true "Sign up request"
// @Success 201 {object} AccountResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 409 {object} map[string]string "Email already registered"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/signup [post]
func (h *Handler) signUp(c *gin.Context) {
	var input SignUpRequest
	log := h.logger.WithField("method", "signUp")
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	account, err := h.identityService.SignUp(c.Request.Context(), input.Email, input.Password, models.Role(input.Role), models.SubRole(input.SubRole))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToAccountResponse(account))
}

// @Summary Sign in
// @Description Exchange email and password for a bearer token. The account role tells the client which experience to open.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body SignInRequest true "Sign in request"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Invalid email or password"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /auth/signin [post]
func (h *Handler) signIn(c *gin.Context) {
	var input SignInRequest
	log := h.logger.WithField("method", "signIn")
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	session, err := h.identityService.SignIn(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			log.Warn("Sign in rejected")
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToSessionResponse(session))
}

// @Summary Current account
// @Description Return the authenticated account with its current role.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} AccountResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /me [get]
func (h *Handler) me(c *gin.Context) {
	account := currentAccount(c)
	log := h.logger.WithField("method", "me").WithField("account_id", account.ID)

	role, subRole, err := h.identityService.ResolveRole(c.Request.Context(), account.ID)
	switch {
	case err == nil:
		account.Role, account.SubRole = role, subRole
		account.ProfileMissing = false
	case errors.Is(err, service.ErrUnauthenticated):
		account.ProfileMissing = true
	default:
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToAccountResponse(account))
}
