package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/shelter_guard/internal/auth"
	"github.com/shenikar/shelter_guard/internal/geo"
	"github.com/shenikar/shelter_guard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testApp struct {
	store    *memStore
	identity IdentityService
	bottles  BottleService
	shelters ShelterService
}

func newTestApp() *testApp {
	store := newMemStore()
	logger := newTestLogger()
	identity := NewIdentityService(store, auth.NewTokenManager("scenario-secret", time.Hour), logger)
	return &testApp{
		store:    store,
		identity: identity,
		bottles:  NewBottleService(store, store, identity, logger, nil),
		shelters: NewShelterService(memShelters{store}, identity, logger, nil),
	}
}

// login регистрирует аккаунт и возвращает вызывающего так же, как его видит http-слой
func (a *testApp) login(t *testing.T, email string, role models.Role, subRole models.SubRole) *models.Account {
	t.Helper()
	ctx := context.Background()

	_, err := a.identity.SignUp(ctx, email, "password", role, subRole)
	require.NoError(t, err)
	session, err := a.identity.SignIn(ctx, email, "password")
	require.NoError(t, err)
	caller, err := a.identity.CurrentAccount(ctx, session.AccessToken)
	require.NoError(t, err)
	return caller
}

func TestScenario_SeekerWithoutProfileGetsHelp(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()

	// профиль ищущего не создается при регистрации
	app.store.dropProfiles = 1
	seeker := app.login(t, "seeker@example.com", models.RoleSeeker, models.SubRoleNone)
	require.True(t, seeker.ProfileMissing)
	assert.Equal(t, models.RoleSeeker, seeker.Role)

	bottle, err := app.bottles.SubmitBottle(ctx, seeker, "我感到很害怕")
	require.NoError(t, err)
	assert.Equal(t, models.BottleStatusOpen, bottle.Status)

	role, _, err := app.identity.ResolveRole(ctx, seeker.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleSeeker, role)

	provider := app.login(t, "helper@example.com", models.RoleProvider, models.SubRoleMental)
	open, err := app.bottles.ListBottles(ctx, provider)
	require.NoError(t, err)
	require.Len(t, open, 1)
	assert.Equal(t, "我感到很害怕", open[0].Content)

	_, err = app.bottles.AttachResponse(ctx, provider, bottle.ID, "138-xxxx", "")
	require.NoError(t, err)

	own, err := app.bottles.ListBottles(ctx, seeker)
	require.NoError(t, err)
	require.Len(t, own, 1)
	require.Len(t, own[0].Responses, 1)
	assert.Equal(t, "138-xxxx", own[0].Responses[0].ContactInfoShared)
	assert.Equal(t, DefaultResponseMessage, own[0].Responses[0].Message)
	assert.Equal(t, models.BottleStatusOpen, own[0].Status)
}

func TestScenario_SeekerSeesOnlyOwnBottles(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()

	alice := app.login(t, "alice@example.com", models.RoleSeeker, models.SubRoleNone)
	bob := app.login(t, "bob@example.com", models.RoleSeeker, models.SubRoleNone)

	_, err := app.bottles.SubmitBottle(ctx, alice, "first")
	require.NoError(t, err)
	_, err = app.bottles.SubmitBottle(ctx, alice, "second")
	require.NoError(t, err)
	_, err = app.bottles.SubmitBottle(ctx, bob, "bob")
	require.NoError(t, err)

	own, err := app.bottles.ListBottles(ctx, alice)
	require.NoError(t, err)
	require.Len(t, own, 2)
	assert.Equal(t, "second", own[0].Content)
	assert.Equal(t, "first", own[1].Content)
}

func TestScenario_ConcurrentResponsesAllVisible(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()

	seeker := app.login(t, "seeker@example.com", models.RoleSeeker, models.SubRoleNone)
	bottle, err := app.bottles.SubmitBottle(ctx, seeker, "need a place to stay")
	require.NoError(t, err)

	providers := []*models.Account{
		app.login(t, "p1@example.com", models.RoleProvider, models.SubRolePhysical),
		app.login(t, "p2@example.com", models.RoleProvider, models.SubRoleMental),
	}

	var wg sync.WaitGroup
	errs := make([]error, len(providers))
	for i, p := range providers {
		wg.Add(1)
		go func(i int, p *models.Account) {
			defer wg.Done()
			_, errs[i] = app.bottles.AttachResponse(ctx, p, bottle.ID, "contact", "on my way")
		}(i, p)
	}
	wg.Wait()
	for _, err := range errs {
		require.NoError(t, err)
	}

	own, err := app.bottles.ListBottles(ctx, seeker)
	require.NoError(t, err)
	require.Len(t, own[0].Responses, 2)
	assert.True(t, own[0].Responses[0].CreatedAt.Before(own[0].Responses[1].CreatedAt))

	got := map[uuid.UUID]bool{}
	for _, r := range own[0].Responses {
		got[r.ProviderID] = true
	}
	assert.True(t, got[providers[0].ID])
	assert.True(t, got[providers[1].ID])
}

func TestScenario_RespondToMissingBottle(t *testing.T) {
	app := newTestApp()
	provider := app.login(t, "helper@example.com", models.RoleProvider, models.SubRolePhysical)

	_, err := app.bottles.AttachResponse(context.Background(), provider, uuid.New(), "contact", "hi")

	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, app.store.responses)
}

func TestScenario_ShelterRankingFromFallback(t *testing.T) {
	app := newTestApp()
	ctx := context.Background()
	provider := app.login(t, "helper@example.com", models.RoleProvider, models.SubRolePhysical)

	_, err := app.shelters.RegisterShelter(ctx, provider, "Shanghai", "", &geo.Coordinate{Latitude: 31.2304, Longitude: 121.4737})
	require.NoError(t, err)
	_, err = app.shelters.RegisterShelter(ctx, provider, "Tiananmen", "", &geo.Coordinate{Latitude: 39.9087, Longitude: 116.3975})
	require.NoError(t, err)

	seeker := app.login(t, "seeker@example.com", models.RoleSeeker, models.SubRoleNone)
	_, err = app.shelters.RegisterShelter(ctx, seeker, "nope", "", &geo.Coordinate{})
	require.ErrorIs(t, err, ErrRoleNotPermitted)

	ranking, err := app.shelters.NearbyShelters(ctx, nil)
	require.NoError(t, err)
	assert.True(t, ranking.Fallback)
	require.Len(t, ranking.Shelters, 2)
	assert.Equal(t, "Tiananmen", ranking.Shelters[0].Shelter.Name)
	assert.Less(t, ranking.Shelters[0].DistanceKm, 2.0)
	assert.Greater(t, ranking.Shelters[1].DistanceKm, 1000.0)
}
