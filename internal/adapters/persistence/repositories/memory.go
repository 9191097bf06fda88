package repositories

import (
	"context"
	"strings"
	"sync"

	"natpark-backend/internal/adapters/persistence/models"
)

// MemoryUserRepository is an in-memory UserRepository for tests.
type MemoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

// NewMemoryUserRepository creates an empty in-memory user repository
func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: make(map[string]*models.User)}
}

func (r *MemoryUserRepository) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.UserID] = &cp
	return nil
}

func (r *MemoryUserRepository) GetByID(_ context.Context, id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *user
	return &cp, nil
}

func (r *MemoryUserRepository) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, user := range r.users {
		if user.Username == username {
			cp := *user
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) Update(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.UserID]; !ok {
		return ErrNotFound
	}
	cp := *user
	r.users[user.UserID] = &cp
	return nil
}

func (r *MemoryUserRepository) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return ErrNotFound
	}
	delete(r.users, id)
	return nil
}

func (r *MemoryUserRepository) List(_ context.Context, q UserQuery) ([]*models.User, int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var matched []*models.User
	for _, user := range r.users {
		if q.Role != "" && user.RoleType != q.Role {
			continue
		}
		if q.Status != "" && string(user.AccountStatus) != q.Status {
			continue
		}
		if q.Search != "" &&
			!strings.Contains(user.Username, q.Search) &&
			!strings.Contains(user.RealName, q.Search) {
			continue
		}
		cp := *user
		matched = append(matched, &cp)
	}
	total := int64(len(matched))
	if q.Offset >= len(matched) {
		return nil, total, nil
	}
	matched = matched[q.Offset:]
	if q.Limit > 0 && q.Limit < len(matched) {
		matched = matched[:q.Limit]
	}
	return matched, total, nil
}

// MemorySessionRepository is an in-memory SessionRepository for tests.
type MemorySessionRepository struct {
	mu       sync.Mutex
	Sessions []*models.UserSession
}

// NewMemorySessionRepository creates an empty in-memory session repository
func NewMemorySessionRepository() *MemorySessionRepository {
	return &MemorySessionRepository{}
}

func (r *MemorySessionRepository) Create(_ context.Context, session *models.UserSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *session
	r.Sessions = append(r.Sessions, &cp)
	return nil
}

func (r *MemorySessionRepository) MarkLoggedOut(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, session := range r.Sessions {
		if session.UserID == userID && session.SessionStatus == models.SessionActive {
			session.SessionStatus = models.SessionLoggedOut
		}
	}
	return nil
}

// MemoryEnforcementStore is an in-memory EnforcementStore for tests.
type MemoryEnforcementStore struct {
	mu         sync.RWMutex
	cases      map[string]*models.IllegalBehavior
	dispatches map[string]*models.EnforcementDispatch
	enforcers  map[string]*models.LawEnforcer
}

// NewMemoryEnforcementStore creates an empty in-memory enforcement store
func NewMemoryEnforcementStore() *MemoryEnforcementStore {
	return &MemoryEnforcementStore{
		cases:      make(map[string]*models.IllegalBehavior),
		dispatches: make(map[string]*models.EnforcementDispatch),
		enforcers:  make(map[string]*models.LawEnforcer),
	}
}

// SeedCase stores a case directly, bypassing workflow rules
func (s *MemoryEnforcementStore) SeedCase(record *models.IllegalBehavior) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *record
	s.cases[record.RecordID] = &cp
}

// SeedDispatch stores a dispatch directly, bypassing workflow rules
func (s *MemoryEnforcementStore) SeedDispatch(dispatch *models.EnforcementDispatch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *dispatch
	s.dispatches[dispatch.DispatchID] = &cp
}

// SeedEnforcer stores an enforcer directly
func (s *MemoryEnforcementStore) SeedEnforcer(enforcer *models.LawEnforcer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *enforcer
	s.enforcers[enforcer.EnforcerID] = &cp
}

func (s *MemoryEnforcementStore) GetCase(_ context.Context, id string) (*models.IllegalBehavior, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	record, ok := s.cases[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *record
	return &cp, nil
}

func (s *MemoryEnforcementStore) UpdateCase(_ context.Context, record *models.IllegalBehavior) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cases[record.RecordID]; !ok {
		return ErrNotFound
	}
	cp := *record
	s.cases[record.RecordID] = &cp
	return nil
}

func (s *MemoryEnforcementStore) GetDispatch(_ context.Context, id string) (*models.EnforcementDispatch, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	dispatch, ok := s.dispatches[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *dispatch
	return &cp, nil
}

func (s *MemoryEnforcementStore) CreateDispatch(_ context.Context, dispatch *models.EnforcementDispatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *dispatch
	s.dispatches[dispatch.DispatchID] = &cp
	return nil
}

func (s *MemoryEnforcementStore) UpdateDispatch(_ context.Context, dispatch *models.EnforcementDispatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.dispatches[dispatch.DispatchID]; !ok {
		return ErrNotFound
	}
	cp := *dispatch
	s.dispatches[dispatch.DispatchID] = &cp
	return nil
}

func (s *MemoryEnforcementStore) GetEnforcer(_ context.Context, id string) (*models.LawEnforcer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	enforcer, ok := s.enforcers[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *enforcer
	return &cp, nil
}

// MemoryReservationStore is an in-memory ReservationStore for tests.
type MemoryReservationStore struct {
	mu           sync.RWMutex
	visitors     map[string]*models.Visitor
	reservations map[string]*models.Reservation
	traffic      map[string]*models.TrafficControl
}

// NewMemoryReservationStore creates an empty in-memory reservation store
func NewMemoryReservationStore() *MemoryReservationStore {
	return &MemoryReservationStore{
		visitors:     make(map[string]*models.Visitor),
		reservations: make(map[string]*models.Reservation),
		traffic:      make(map[string]*models.TrafficControl),
	}
}

// SeedVisitor stores a visitor directly
func (s *MemoryReservationStore) SeedVisitor(visitor *models.Visitor) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *visitor
	s.visitors[visitor.VisitorID] = &cp
}

// SeedReservation stores a reservation directly, bypassing validation
func (s *MemoryReservationStore) SeedReservation(reservation *models.Reservation) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *reservation
	s.reservations[reservation.ReservationID] = &cp
}

// SeedTrafficControl stores a traffic control row directly
func (s *MemoryReservationStore) SeedTrafficControl(control *models.TrafficControl) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *control
	s.traffic[control.AreaID] = &cp
}

func (s *MemoryReservationStore) GetVisitor(_ context.Context, id string) (*models.Visitor, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	visitor, ok := s.visitors[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *visitor
	return &cp, nil
}

func (s *MemoryReservationStore) UpdateVisitor(_ context.Context, visitor *models.Visitor) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.visitors[visitor.VisitorID]; !ok {
		return ErrNotFound
	}
	cp := *visitor
	s.visitors[visitor.VisitorID] = &cp
	return nil
}

func (s *MemoryReservationStore) GetReservation(_ context.Context, id string) (*models.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reservation, ok := s.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *reservation
	return &cp, nil
}

func (s *MemoryReservationStore) CreateReservation(_ context.Context, reservation *models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *reservation
	s.reservations[reservation.ReservationID] = &cp
	return nil
}

func (s *MemoryReservationStore) UpdateReservation(_ context.Context, reservation *models.Reservation) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reservations[reservation.ReservationID]; !ok {
		return ErrNotFound
	}
	cp := *reservation
	s.reservations[reservation.ReservationID] = &cp
	return nil
}

func (s *MemoryReservationStore) GetTrafficControl(_ context.Context, areaID string) (*models.TrafficControl, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	control, ok := s.traffic[areaID]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *control
	return &cp, nil
}

func (s *MemoryReservationStore) SaveTrafficControl(_ context.Context, control *models.TrafficControl) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *control
	s.traffic[control.AreaID] = &cp
	return nil
}

func (s *MemoryReservationStore) ListTrafficControls(_ context.Context) ([]*models.TrafficControl, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	controls := make([]*models.TrafficControl, 0, len(s.traffic))
	for _, control := range s.traffic {
		cp := *control
		controls = append(controls, &cp)
	}
	return controls, nil
}
