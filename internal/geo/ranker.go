package geo

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/shenikar/shelter_guard/internal/models"
)

var (
	ErrPermissionDenied      = errors.New("coordinate permission denied")
	ErrCoordinateUnavailable = errors.New("coordinate unavailable")
)

// DefaultCityCenter используется, когда координату пользователя получить нельзя
var DefaultCityCenter = Coordinate{Latitude: 39.9042, Longitude: 116.4074}

// CoordinateSource отдает текущую координату вызывающего
type CoordinateSource interface {
	CurrentCoordinate(ctx context.Context) (Coordinate, error)
}

// RankedShelter - укрытие с расстоянием до точки отсчета
type RankedShelter struct {
	Shelter    *models.Shelter
	DistanceKm float64
}

// Ranking - укрытия, упорядоченные от точки отсчета
type Ranking struct {
	Origin   Coordinate
	Fallback bool
	Shelters []RankedShelter
}

// ResolveOrigin возвращает координату источника или DefaultCityCenter.
// Второе значение true, если использован запасной центр.
func ResolveOrigin(ctx context.Context, source CoordinateSource) (Coordinate, bool) {
	if source == nil {
		return DefaultCityCenter, true
	}
	origin, err := source.CurrentCoordinate(ctx)
	if err != nil {
		return DefaultCityCenter, true
	}
	if err := origin.Validate(); err != nil {
		return DefaultCityCenter, true
	}
	return origin, false
}

// RankByDistance сортирует укрытия по возрастанию расстояния.
// Сортировка стабильная: при равных расстояниях сохраняется входной порядок.
// Записи с координатами вне диапазона пропускаются.
func RankByDistance(origin Coordinate, shelters []*models.Shelter) []RankedShelter {
	ranked := make([]RankedShelter, 0, len(shelters))
	for _, s := range shelters {
		if s == nil {
			continue
		}
		d, err := ValidatedDistanceKm(origin, Coordinate{Latitude: s.Latitude, Longitude: s.Longitude})
		if err != nil {
			continue
		}
		ranked = append(ranked, RankedShelter{Shelter: s, DistanceKm: d})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].DistanceKm < ranked[j].DistanceKm
	})
	return ranked
}

// NavigationURL строит ссылку на маршрут до точки в Google Maps
func NavigationURL(c Coordinate) string {
	return fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%v,%v", c.Latitude, c.Longitude)
}
