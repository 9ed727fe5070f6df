package repository

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"motofleet/backend/services/fleet-sandbox/internal/models"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("repository: not found")
	// ErrUsernameTaken is returned when the username already exists.
	ErrUsernameTaken = errors.New("repository: username already registered")
	// ErrPlacaTaken is returned when another vehicle already carries the plate.
	ErrPlacaTaken = errors.New("repository: placa already registered")
)

// Repository keeps users, vehicles and IoT tags in process memory.
type Repository struct {
	mu sync.RWMutex

	users      map[int64]models.User
	motos      map[int64]models.Moto
	iots       map[int64]models.Iot
	nextUserID int64
	nextMotoID int64
	nextIotID  int64
	now        func() time.Time
}

// New returns an empty repository.
func New() *Repository {
	return &Repository{
		users: make(map[int64]models.User),
		motos: make(map[int64]models.Moto),
		iots:  make(map[int64]models.Iot),
		now:   time.Now,
	}
}

// CreateUser stores a new user and assigns its id.
func (r *Repository) CreateUser(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.users {
		if strings.EqualFold(existing.Username, u.Username) {
			return ErrUsernameTaken
		}
	}
	r.nextUserID++
	u.ID = r.nextUserID
	u.CreatedAt = r.now().UTC()
	r.users[u.ID] = *u
	return nil
}

// GetUserByUsername fetches user by username, case-insensitively.
func (r *Repository) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Username, username) {
			u := u
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// GetUserByID fetches user by id.
func (r *Repository) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

// ListMotos returns every vehicle ordered by id.
func (r *Repository) ListMotos(_ context.Context) ([]models.Moto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filterMotos(func(models.Moto) bool { return true }), nil
}

// ListMotosBySetor returns vehicles parked in setor.
func (r *Repository) ListMotosBySetor(_ context.Context, setor string) ([]models.Moto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filterMotos(func(m models.Moto) bool { return m.Setor == setor }), nil
}

func (r *Repository) filterMotos(keep func(models.Moto) bool) []models.Moto {
	out := make([]models.Moto, 0, len(r.motos))
	for _, m := range r.motos {
		if keep(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetMoto fetches vehicle by id.
func (r *Repository) GetMoto(_ context.Context, id int64) (*models.Moto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.motos[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

// GetMotoByPlaca fetches vehicle by plate. Plates are compared without case or dash.
func (r *Repository) GetMotoByPlaca(_ context.Context, placa string) (*models.Moto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	key := placaKey(placa)
	for _, m := range r.motos {
		if placaKey(m.Placa) == key {
			m := m
			return &m, nil
		}
	}
	return nil, ErrNotFound
}

// GetMotoByIot returns the vehicle attached to the tag, or ErrNotFound when the tag is
// missing or unattached.
func (r *Repository) GetMotoByIot(_ context.Context, iotID int64) (*models.Moto, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tag, ok := r.iots[iotID]
	if !ok || tag.Moto == nil {
		return nil, ErrNotFound
	}
	m, ok := r.motos[tag.Moto.ID]
	if !ok {
		return nil, ErrNotFound
	}
	return &m, nil
}

// CreateMoto stores a new vehicle and assigns its id.
func (r *Repository) CreateMoto(_ context.Context, m *models.Moto) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.placaInUse(m.Placa, 0) {
		return ErrPlacaTaken
	}
	r.nextMotoID++
	m.ID = r.nextMotoID
	r.motos[m.ID] = *m
	return nil
}

// UpdateMoto replaces the stored vehicle with m.
func (r *Repository) UpdateMoto(_ context.Context, m *models.Moto) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.motos[m.ID]; !ok {
		return ErrNotFound
	}
	if r.placaInUse(m.Placa, m.ID) {
		return ErrPlacaTaken
	}
	r.motos[m.ID] = *m
	return nil
}

// DeleteMoto removes the vehicle and detaches any tag pointing at it.
func (r *Repository) DeleteMoto(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.motos[id]; !ok {
		return ErrNotFound
	}
	delete(r.motos, id)
	for tagID, tag := range r.iots {
		if tag.Moto != nil && tag.Moto.ID == id {
			tag.Moto = nil
			r.iots[tagID] = tag
		}
	}
	return nil
}

func (r *Repository) placaInUse(placa string, exceptID int64) bool {
	key := placaKey(placa)
	for id, m := range r.motos {
		if id != exceptID && placaKey(m.Placa) == key {
			return true
		}
	}
	return false
}

func placaKey(placa string) string {
	return strings.ToUpper(strings.ReplaceAll(strings.TrimSpace(placa), "-", ""))
}

// ListIots returns every tag ordered by id.
func (r *Repository) ListIots(_ context.Context) ([]models.Iot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Iot, 0, len(r.iots))
	for _, tag := range r.iots {
		out = append(out, cloneIot(tag))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetIot fetches tag by id.
func (r *Repository) GetIot(_ context.Context, id int64) (*models.Iot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tag, ok := r.iots[id]
	if !ok {
		return nil, ErrNotFound
	}
	tag = cloneIot(tag)
	return &tag, nil
}

// CreateIot stores a new tag and assigns its id.
func (r *Repository) CreateIot(_ context.Context, tag *models.Iot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextIotID++
	tag.ID = r.nextIotID
	r.iots[tag.ID] = cloneIot(*tag)
	return nil
}

// UpdateIot replaces the stored tag with tag.
func (r *Repository) UpdateIot(_ context.Context, tag *models.Iot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.iots[tag.ID]; !ok {
		return ErrNotFound
	}
	r.iots[tag.ID] = cloneIot(*tag)
	return nil
}

// DeleteIot removes tag by id.
func (r *Repository) DeleteIot(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.iots[id]; !ok {
		return ErrNotFound
	}
	delete(r.iots, id)
	return nil
}

func cloneIot(tag models.Iot) models.Iot {
	if tag.Moto != nil {
		ref := *tag.Moto
		tag.Moto = &ref
	}
	return tag
}
