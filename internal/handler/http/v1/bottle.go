package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// @Summary Submit a help request
// @Description Seeker submits a message in a bottle. Requires bearer token.
// @Tags Bottles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param bottle body SubmitBottleRequest true "Bottle content"
// @Success 201 {object} BottleResponse
// @Failure 400 {object} map[string]string "Invalid request body or empty content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Providers cannot submit bottles"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /bottles [post]
func (h *Handler) submitBottle(c *gin.Context) {
	var input SubmitBottleRequest
	account := currentAccount(c)
	log := h.logger.WithField("method", "submitBottle").WithField("account_id", account.ID)
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	bottle, err := h.bottleService.SubmitBottle(c.Request.Context(), account, input.Content)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToBottleResponse(bottle))
}

// @Summary List bottles
// @Description Providers get every open bottle, seekers get their own. Newest first, replies oldest first.
// @Tags Bottles
// @Produce json
// @Security BearerAuth
// @Success 200 {array} BottleResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /bottles [get]
func (h *Handler) listBottles(c *gin.Context) {
	account := currentAccount(c)
	log := h.logger.WithField("method", "listBottles").WithField("account_id", account.ID)

	bottles, err := h.bottleService.ListBottles(c.Request.Context(), account)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToBottleResponses(bottles))
}

// @Summary Respond to a bottle
// @Description Provider shares contact info with the seeker. The bottle status does not change.
// @Tags Bottles
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Bottle ID"
// @Param response body RespondToBottleRequest true "Contact info and message"
// @Success 201 {object} BottleReplyResponse
// @Failure 400 {object} map[string]string "Invalid bottle ID or request body"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Only providers can respond"
// @Failure 404 {object} map[string]string "Bottle not found"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /bottles/{id}/responses [post]
func (h *Handler) respondToBottle(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid bottle ID"})
		return
	}
	account := currentAccount(c)
	log := h.logger.WithField("method", "respondToBottle").WithField("bottle_id", id)

	var input RespondToBottleRequest
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	response, err := h.bottleService.AttachResponse(c.Request.Context(), account, id, input.ContactInfo, input.Message)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToBottleReplyResponse(response))
}
