package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/shelter_guard/internal/geo"
)

// @Summary Register a shelter
// @Description Provider registers a physical safe location. Requires bearer token.
// @Tags Shelters
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param shelter body RegisterShelterRequest true "Shelter registration request"
// @Success 201 {object} ShelterResponse
// @Failure 400 {object} map[string]string "Invalid request body or coordinate"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Only providers can register shelters"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /shelters [post]
func (h *Handler) registerShelter(c *gin.Context) {
	var input RegisterShelterRequest
	account := currentAccount(c)
	log := h.logger.WithField("method", "registerShelter").WithField("account_id", account.ID)
	if !h.bindAndValidate(c, log, &input) {
		return
	}

	coordinate := &geo.Coordinate{Latitude: *input.Latitude, Longitude: *input.Longitude}
	shelter, err := h.shelterService.RegisterShelter(c.Request.Context(), account, input.Name, input.Address, coordinate)
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ModelToShelterResponse(shelter))
}

// @Summary List shelters
// @Description Every registered shelter, without filtering.
// @Tags Shelters
// @Produce json
// @Security BearerAuth
// @Success 200 {array} ShelterResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /shelters [get]
func (h *Handler) listShelters(c *gin.Context) {
	log := h.logger.WithField("method", "listShelters")

	shelters, err := h.shelterService.ListShelters(c.Request.Context())
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToShelterResponses(shelters))
}

// @Summary Nearby shelters
// @Description Shelters ranked by great-circle distance. Without a usable coordinate the city center is used and fallback is true.
// @Tags Shelters
// @Produce json
// @Security BearerAuth
// @Param lat query number false "Caller latitude"
// @Param lon query number false "Caller longitude"
// @Param denied query bool false "Location permission was denied on the device"
// @Success 200 {object} NearbySheltersResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 503 {object} map[string]string "Store unavailable"
// @Router /shelters/nearby [get]
func (h *Handler) nearbyShelters(c *gin.Context) {
	log := h.logger.WithField("method", "nearbyShelters")

	ranking, err := h.shelterService.NearbyShelters(c.Request.Context(), newQueryCoordinateSource(c))
	if err != nil {
		h.writeError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, RankingToNearbyResponse(ranking))
}
