package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/shelter_guard/internal/models"
)

// memStore - хранилище в памяти с проверкой внешних ключей, как в postgres
type memStore struct {
	mu sync.Mutex

	clock     time.Time
	users     map[string]*models.AuthUser
	profiles  map[uuid.UUID]*models.Account
	bottles   []*models.Bottle
	responses []*models.BottleResponse
	shelters  []*models.Shelter

	// dropProfiles заставляет EnsureProfile молча не создавать профиль
	dropProfiles int
}

func newMemStore() *memStore {
	return &memStore{
		clock:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		users:    make(map[string]*models.AuthUser),
		profiles: make(map[uuid.UUID]*models.Account),
	}
}

// tick выдает строго возрастающее время записи; вызывается под mu
func (m *memStore) tick() time.Time {
	m.clock = m.clock.Add(time.Millisecond)
	return m.clock
}

func (m *memStore) CreateAuthUser(_ context.Context, user *models.AuthUser) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.users[user.Email]; ok {
		return ErrConflict
	}
	user.ID = uuid.New()
	user.CreatedAt = m.tick()
	cp := *user
	m.users[user.Email] = &cp
	return nil
}

func (m *memStore) GetAuthUserByEmail(_ context.Context, email string) (*models.AuthUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[email]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (m *memStore) EnsureProfile(_ context.Context, account *models.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.dropProfiles > 0 {
		m.dropProfiles--
		return ErrStoreUnavailable
	}
	if _, ok := m.profiles[account.ID]; ok {
		return nil
	}
	m.profiles[account.ID] = &models.Account{
		ID:        account.ID,
		Role:      account.Role,
		SubRole:   account.SubRole,
		CreatedAt: m.tick(),
	}
	return nil
}

func (m *memStore) GetProfile(_ context.Context, id uuid.UUID) (*models.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.profiles[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memStore) Create(_ context.Context, bottle *models.Bottle) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.profiles[bottle.UserID]; !ok {
		return ErrConstraintViolation
	}
	bottle.ID = uuid.New()
	bottle.CreatedAt = m.tick()
	cp := *bottle
	cp.Responses = nil
	m.bottles = append(m.bottles, &cp)
	return nil
}

func (m *memStore) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.bottles {
		if b.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) ListOpen(context.Context) ([]*models.Bottle, error) {
	return m.list(func(b *models.Bottle) bool { return b.Status == models.BottleStatusOpen })
}

func (m *memStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*models.Bottle, error) {
	return m.list(func(b *models.Bottle) bool { return b.UserID == ownerID })
}

func (m *memStore) list(keep func(*models.Bottle) bool) ([]*models.Bottle, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*models.Bottle
	for _, b := range m.bottles {
		if keep(b) {
			out = append(out, m.withResponses(b))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// withResponses копирует просьбу вместе с ответами; вызывается под mu
func (m *memStore) withResponses(b *models.Bottle) *models.Bottle {
	cp := *b
	cp.Responses = nil
	for _, r := range m.responses {
		if r.BottleID == b.ID {
			rc := *r
			cp.Responses = append(cp.Responses, &rc)
		}
	}
	return &cp
}

func (m *memStore) CreateResponse(_ context.Context, response *models.BottleResponse) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	found := false
	for _, b := range m.bottles {
		if b.ID == response.BottleID {
			found = true
			break
		}
	}
	if !found {
		return ErrConstraintViolation
	}
	if _, ok := m.profiles[response.ProviderID]; !ok {
		return ErrConstraintViolation
	}
	response.ID = uuid.New()
	response.CreatedAt = m.tick()
	cp := *response
	m.responses = append(m.responses, &cp)
	return nil
}

// memShelters реализует ShelterRepository поверх memStore без кеша
type memShelters struct{ *memStore }

func (m memShelters) Create(_ context.Context, shelter *models.Shelter) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	shelter.ID = uuid.New()
	shelter.CreatedAt = m.tick()
	cp := *shelter
	m.shelters = append(m.shelters, &cp)
	return nil
}

func (m memShelters) List(context.Context) ([]*models.Shelter, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*models.Shelter, 0, len(m.shelters))
	for _, s := range m.shelters {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (m memShelters) GetListFromCache(context.Context) ([]*models.Shelter, error) { return nil, nil }

func (m memShelters) ListCacheGeneration(context.Context) (int64, error) { return 0, nil }

func (m memShelters) SetListCache(context.Context, int64, []*models.Shelter) error { return nil }

func (m memShelters) InvalidateListCache(context.Context) error { return nil }

// cachedShelters добавляет к memShelters кеш с поколениями по образцу Redis
type cachedShelters struct {
	memShelters

	cacheMu    sync.Mutex
	cached     []*models.Shelter
	generation int64
	// afterList срабатывает один раз после чтения таблицы
	afterList func()
}

func (c *cachedShelters) List(ctx context.Context) ([]*models.Shelter, error) {
	out, err := c.memShelters.List(ctx)
	c.cacheMu.Lock()
	hook := c.afterList
	c.afterList = nil
	c.cacheMu.Unlock()
	if hook != nil {
		hook()
	}
	return out, err
}

func (c *cachedShelters) GetListFromCache(context.Context) ([]*models.Shelter, error) {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()
	return c.cached, nil
}

func (c *cachedShelters) ListCacheGeneration(context.Context) (int64, error) {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()
	return c.generation, nil
}

func (c *cachedShelters) SetListCache(_ context.Context, generation int64, shelters []*models.Shelter) error {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()
	if generation != c.generation {
		return nil
	}
	c.cached = shelters
	return nil
}

func (c *cachedShelters) InvalidateListCache(context.Context) error {
	c.cacheMu.Lock()
	defer c.cacheMu.Unlock()
	c.generation++
	c.cached = nil
	return nil
}
