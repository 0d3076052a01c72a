package geo

import (
	"errors"
	"fmt"
	"math"
)

// EarthRadiusKm - средний радиус Земли
const EarthRadiusKm = 6371.0

var ErrInvalidCoordinate = errors.New("invalid coordinate")

// Coordinate - точка в градусах
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate проверяет диапазоны широты [-90, 90] и долготы [-180, 180]
func (c Coordinate) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsInf(c.Latitude, 0) || c.Latitude < -90 || c.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrInvalidCoordinate, c.Latitude)
	}
	if math.IsNaN(c.Longitude) || math.IsInf(c.Longitude, 0) || c.Longitude < -180 || c.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrInvalidCoordinate, c.Longitude)
	}
	return nil
}

// DistanceKm считает расстояние по большому кругу (формула гаверсинусов).
// Для совпадающих точек возвращает 0.
func DistanceKm(a, b Coordinate) float64 {
	if a == b {
		return 0
	}
	lat1 := degToRad(a.Latitude)
	lat2 := degToRad(b.Latitude)
	dLat := degToRad(b.Latitude - a.Latitude)
	dLon := degToRad(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLon*sinLon
	// ошибки округления у антиподов дают h чуть больше 1
	h = math.Min(1, math.Max(0, h))

	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// ValidatedDistanceKm - DistanceKm с предварительной проверкой обеих точек
func ValidatedDistanceKm(a, b Coordinate) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, err
	}
	if err := b.Validate(); err != nil {
		return 0, err
	}
	return DistanceKm(a, b), nil
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
