package v1

import (
	"context"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/shelter_guard/internal/geo"
)

// queryCoordinateSource отдает координату из параметров lat/lon запроса
type queryCoordinateSource struct {
	lat, lon string
	denied   bool
}

func newQueryCoordinateSource(c *gin.Context) geo.CoordinateSource {
	denied, _ := strconv.ParseBool(c.Query("denied"))
	return &queryCoordinateSource{
		lat:    c.Query("lat"),
		lon:    c.Query("lon"),
		denied: denied,
	}
}

func (s *queryCoordinateSource) CurrentCoordinate(context.Context) (geo.Coordinate, error) {
	if s.denied {
		return geo.Coordinate{}, geo.ErrPermissionDenied
	}
	if s.lat == "" || s.lon == "" {
		return geo.Coordinate{}, geo.ErrCoordinateUnavailable
	}

	lat, err := strconv.ParseFloat(s.lat, 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("%w: lat %q", geo.ErrInvalidCoordinate, s.lat)
	}
	lon, err := strconv.ParseFloat(s.lon, 64)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("%w: lon %q", geo.ErrInvalidCoordinate, s.lon)
	}

	c := geo.Coordinate{Latitude: lat, Longitude: lon}
	return c, c.Validate()
}
