package v1

import (
	"github.com/shenikar/shelter_guard/internal/geo"
	"github.com/shenikar/shelter_guard/internal/models"
)

func ModelToAccountResponse(model *models.Account) AccountResponse {
	return AccountResponse{
		ID:             model.ID,
		Email:          model.Email,
		Role:           string(model.Role),
		SubRole:        string(model.SubRole),
		CreatedAt:      model.CreatedAt,
		ProfileMissing: model.ProfileMissing,
	}
}

func ModelToSessionResponse(model *models.Session) *SessionResponse {
	return &SessionResponse{
		AccessToken: model.AccessToken,
		TokenType:   "Bearer",
		ExpiresAt:   model.ExpiresAt,
		Account:     ModelToAccountResponse(model.Account),
	}
}

func ModelToBottleReplyResponse(model *models.BottleResponse) *BottleReplyResponse {
	return &BottleReplyResponse{
		ID:          model.ID,
		BottleID:    model.BottleID,
		ProviderID:  model.ProviderID,
		ContactInfo: model.ContactInfoShared,
		Message:     model.Message,
		CreatedAt:   model.CreatedAt,
	}
}

// ModelToBottleResponse преобразует просьбу; responses всегда массив, не null
func ModelToBottleResponse(model *models.Bottle) *BottleResponse {
	replies := make([]*BottleReplyResponse, len(model.Responses))
	for i, r := range model.Responses {
		replies[i] = ModelToBottleReplyResponse(r)
	}
	return &BottleResponse{
		ID:        model.ID,
		UserID:    model.UserID,
		Content:   model.Content,
		Status:    string(model.Status),
		CreatedAt: model.CreatedAt,
		Responses: replies,
	}
}

func ModelsToBottleResponses(models []*models.Bottle) []*BottleResponse {
	responses := make([]*BottleResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToBottleResponse(model)
	}
	return responses
}

func ModelToShelterResponse(model *models.Shelter) ShelterResponse {
	return ShelterResponse{
		ID:            model.ID,
		ProviderID:    model.ProviderID,
		Name:          model.Name,
		Address:       model.Address,
		Latitude:      model.Latitude,
		Longitude:     model.Longitude,
		CreatedAt:     model.CreatedAt,
		NavigationURL: geo.NavigationURL(geo.Coordinate{Latitude: model.Latitude, Longitude: model.Longitude}),
	}
}

func ModelsToShelterResponses(models []*models.Shelter) []ShelterResponse {
	responses := make([]ShelterResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToShelterResponse(model)
	}
	return responses
}

func RankingToNearbyResponse(ranking *geo.Ranking) *NearbySheltersResponse {
	shelters := make([]*RankedShelterResponse, len(ranking.Shelters))
	for i, r := range ranking.Shelters {
		shelters[i] = &RankedShelterResponse{
			ShelterResponse: ModelToShelterResponse(r.Shelter),
			DistanceKm:      r.DistanceKm,
		}
	}
	return &NearbySheltersResponse{
		Origin: CoordinateResponse{
			Latitude:  ranking.Origin.Latitude,
			Longitude: ranking.Origin.Longitude,
		},
		Fallback: ranking.Fallback,
		Shelters: shelters,
	}
}
