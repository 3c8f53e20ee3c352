package services

import (
	"context"
	"strings"
	"time"

	"gameonbaby/internal/domain"
)

const testTimeout = 5 * time.Second

type mockEventRepository struct {
	events map[string]*domain.Event
	err    error
}

func (m *mockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	if m.err != nil {
		return m.err
	}
	event.ID = "ev-new"
	if m.events == nil {
		m.events = map[string]*domain.Event{}
	}
	m.events[event.ID] = event
	return nil
}

func (m *mockEventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	ev, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return ev, nil
}

func (m *mockEventRepository) ListVisible(ctx context.Context) ([]*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.Event
	for _, ev := range m.events {
		if ev.Visible {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *mockEventRepository) ListAll(ctx context.Context) ([]*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.Event
	for _, ev := range m.events {
		out = append(out, ev)
	}
	return out, nil
}

func (m *mockEventRepository) Update(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error) {
	if m.err != nil {
		return nil, m.err
	}
	ev, ok := m.events[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	if input.Title != nil {
		ev.Title = *input.Title
	}
	if input.Capacity != nil {
		ev.Capacity = *input.Capacity
	}
	if input.From != nil {
		ev.From = *input.From
	}
	if input.To != nil {
		ev.To = *input.To
	}
	return ev, nil
}

func (m *mockEventRepository) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.events[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.events, id)
	return nil
}

type mockRegistrationRepository struct {
	active  map[string]*domain.Registration // key: eventID:email:first:last
	deleted map[string]*domain.Registration
	byID    map[string]*domain.Registration
	err     error

	created     []*domain.Registration
	reactivated []*domain.Registration
	hardDeleted []string
	softDeleted []string
	promoted    []string
	moved       []string
	history     []*domain.HistoryEntry
}

func identityKey(eventID, email, first, last string) string {
	return strings.ToLower(eventID + ":" + email + ":" + first + ":" + last)
}

func (m *mockRegistrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	if m.err != nil {
		return nil, m.err
	}
	reg, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return reg, nil
}

func (m *mockRegistrationRepository) GetByEventAndIdentity(ctx context.Context, eventID, email, firstName, lastName string, deleted bool) (*domain.Registration, error) {
	if m.err != nil {
		return nil, m.err
	}
	pool := m.active
	if deleted {
		pool = m.deleted
	}
	reg, ok := pool[identityKey(eventID, email, firstName, lastName)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return reg, nil
}

func (m *mockRegistrationRepository) GetActiveByEventAndEmail(ctx context.Context, eventID, email string) (*domain.Registration, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, reg := range m.active {
		if reg.EventID == eventID && strings.EqualFold(reg.Email, email) {
			return reg, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockRegistrationRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.RegistrationWithPayment, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.RegistrationWithPayment
	for _, reg := range m.active {
		if reg.EventID == eventID {
			out = append(out, &domain.RegistrationWithPayment{Registration: *reg})
		}
	}
	return out, nil
}

func (m *mockRegistrationRepository) CountActiveByEventID(ctx context.Context, eventID string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	count := 0
	for _, reg := range m.active {
		if reg.EventID == eventID {
			count++
		}
	}
	return count, nil
}

func (m *mockRegistrationRepository) CreateWithHistory(ctx context.Context, reg *domain.Registration, entry *domain.HistoryEntry) error {
	if m.err != nil {
		return m.err
	}
	reg.ID = "reg-new"
	m.created = append(m.created, reg)
	m.history = append(m.history, entry)
	return nil
}

func (m *mockRegistrationRepository) ReactivateWithHistory(ctx context.Context, reg *domain.Registration, entry *domain.HistoryEntry) error {
	if m.err != nil {
		return m.err
	}
	m.reactivated = append(m.reactivated, reg)
	m.history = append(m.history, entry)
	return nil
}

func (m *mockRegistrationRepository) DeleteWithHistory(ctx context.Context, id string, entry *domain.HistoryEntry) error {
	if m.err != nil {
		return m.err
	}
	m.hardDeleted = append(m.hardDeleted, id)
	m.history = append(m.history, entry)
	return nil
}

func (m *mockRegistrationRepository) SetDeletedWithHistory(ctx context.Context, id string, entry *domain.HistoryEntry) error {
	if m.err != nil {
		return m.err
	}
	m.softDeleted = append(m.softDeleted, id)
	m.history = append(m.history, entry)
	return nil
}

func (m *mockRegistrationRepository) SetAttended(ctx context.Context, id string, attended bool) error {
	if m.err != nil {
		return m.err
	}
	reg, ok := m.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	reg.Attended = attended
	return nil
}

func (m *mockRegistrationRepository) PromoteFromWaitingList(ctx context.Context, waitingListID string, reg *domain.Registration, entry *domain.HistoryEntry) error {
	if m.err != nil {
		return m.err
	}
	reg.ID = "reg-promoted"
	m.promoted = append(m.promoted, waitingListID)
	m.history = append(m.history, entry)
	return nil
}

func (m *mockRegistrationRepository) MoveToWaitingList(ctx context.Context, registrationID string, wl *domain.WaitingListEntry, entry *domain.HistoryEntry) error {
	if m.err != nil {
		return m.err
	}
	wl.ID = "wl-new"
	m.moved = append(m.moved, registrationID)
	m.history = append(m.history, entry)
	return nil
}

type mockWaitingListRepository struct {
	entries map[string]*domain.WaitingListEntry // key: id
	err     error

	created []*domain.WaitingListEntry
	deleted []string
}

func (m *mockWaitingListRepository) Create(ctx context.Context, entry *domain.WaitingListEntry) error {
	if m.err != nil {
		return m.err
	}
	entry.ID = "wl-new"
	m.created = append(m.created, entry)
	return nil
}

func (m *mockWaitingListRepository) GetByID(ctx context.Context, id string) (*domain.WaitingListEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	entry, ok := m.entries[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return entry, nil
}

func (m *mockWaitingListRepository) GetByEventAndIdentity(ctx context.Context, eventID, email, firstName, lastName string) (*domain.WaitingListEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, entry := range m.entries {
		if entry.EventID == eventID && strings.EqualFold(entry.Email, email) &&
			strings.EqualFold(entry.FirstName, firstName) && strings.EqualFold(entry.LastName, lastName) {
			return entry, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockWaitingListRepository) GetByEventAndEmail(ctx context.Context, eventID, email string) (*domain.WaitingListEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, entry := range m.entries {
		if entry.EventID == eventID && strings.EqualFold(entry.Email, email) {
			return entry, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *mockWaitingListRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.WaitingListEntry, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.WaitingListEntry
	for _, entry := range m.entries {
		if entry.EventID == eventID {
			out = append(out, entry)
		}
	}
	return out, nil
}

func (m *mockWaitingListRepository) Delete(ctx context.Context, id string) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.entries[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.entries, id)
	m.deleted = append(m.deleted, id)
	return nil
}

type mockPaymentRepository struct {
	byRegistration map[string]*domain.Payment
	err            error

	created []*domain.Payment
	setPaid []string
}

func (m *mockPaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	if m.err != nil {
		return m.err
	}
	p.ID = "pay-new"
	m.created = append(m.created, p)
	return nil
}

func (m *mockPaymentRepository) GetByRegistrationID(ctx context.Context, registrationID string) (*domain.Payment, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.byRegistration[registrationID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

func (m *mockPaymentRepository) SetPaid(ctx context.Context, id string, paid bool) error {
	if m.err != nil {
		return m.err
	}
	m.setPaid = append(m.setPaid, id)
	return nil
}

type mockNoShowRepository struct {
	noShows    map[string]*domain.NoShow // key: id
	existing   map[string]struct{}
	candidates []*domain.NoShowCandidate
	err        error

	created []*domain.NoShow
	batches [][]*domain.NoShow
	feePaid []string
}

func (m *mockNoShowRepository) Create(ctx context.Context, n *domain.NoShow) error {
	if m.err != nil {
		return m.err
	}
	n.ID = "ns-new"
	m.created = append(m.created, n)
	return nil
}

func (m *mockNoShowRepository) CreateBatch(ctx context.Context, ns []*domain.NoShow) error {
	if m.err != nil {
		return m.err
	}
	m.batches = append(m.batches, ns)
	return nil
}

func (m *mockNoShowRepository) ListByEventID(ctx context.Context, eventID string) ([]*domain.NoShow, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []*domain.NoShow
	for _, n := range m.noShows {
		if n.EventID == eventID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (m *mockNoShowRepository) ExistingEmailsByEventID(ctx context.Context, eventID string) (map[string]struct{}, error) {
	if m.err != nil {
		return nil, m.err
	}
	existing := map[string]struct{}{}
	for k := range m.existing {
		existing[k] = struct{}{}
	}
	return existing, nil
}

func (m *mockNoShowRepository) ListCandidatesByEventID(ctx context.Context, eventID string) ([]*domain.NoShowCandidate, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.candidates, nil
}

func (m *mockNoShowRepository) SetFeePaid(ctx context.Context, id string, feePaid bool) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.noShows[id]; !ok {
		return domain.ErrNotFound
	}
	m.feePaid = append(m.feePaid, id)
	return nil
}

type mockUserRepository struct {
	byExternalID map[string]*domain.User
	byEmail      map[string]*domain.User
	byID         map[string]*domain.User
	count        int
	err          error

	created     []*domain.User
	roleUpdates map[string]domain.Role
}

func (m *mockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if m.err != nil {
		return m.err
	}
	user.ID = "u-new"
	m.created = append(m.created, user)
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepository) GetByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.byExternalID[externalID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.byEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (m *mockUserRepository) Count(ctx context.Context) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	return m.count, nil
}

func (m *mockUserRepository) UpdateRole(ctx context.Context, id string, role domain.Role) error {
	if m.err != nil {
		return m.err
	}
	if _, ok := m.byID[id]; !ok {
		return domain.ErrUserNotFound
	}
	if m.roleUpdates == nil {
		m.roleUpdates = map[string]domain.Role{}
	}
	m.roleUpdates[id] = role
	return nil
}

func (m *mockUserRepository) Search(ctx context.Context, query string, params domain.PaginationParams) ([]*domain.User, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	var out []*domain.User
	for _, u := range m.byID {
		if strings.Contains(strings.ToLower(u.Email), strings.ToLower(query)) ||
			strings.Contains(strings.ToLower(u.Name), strings.ToLower(query)) {
			out = append(out, u)
		}
	}
	return out, len(out), nil
}

type mockRoleCache struct {
	roles       map[string]domain.Role
	invalidated []string
}

func (m *mockRoleCache) Get(ctx context.Context, key string) (domain.Role, bool) {
	role, ok := m.roles[key]
	return role, ok
}

func (m *mockRoleCache) Set(ctx context.Context, key string, role domain.Role) {
	if m.roles == nil {
		m.roles = map[string]domain.Role{}
	}
	m.roles[key] = role
}

func (m *mockRoleCache) Invalidate(ctx context.Context, keys ...string) {
	for _, key := range keys {
		delete(m.roles, key)
		m.invalidated = append(m.invalidated, key)
	}
}

type mockQRGenerator struct {
	err      error
	requests []domain.PaymentQRRequest
}

func (m *mockQRGenerator) Generate(req domain.PaymentQRRequest) (*domain.PaymentQR, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.requests = append(m.requests, req)
	return &domain.PaymentQR{
		Payload:   "SPD*1.0*ACC:" + req.Account,
		PNGBase64: "data:image/png;base64,ZmFrZQ==",
	}, nil
}

type mockEmailService struct {
	err           error
	confirmations []*domain.RegistrationConfirmationEmailData
	promotions    []*domain.WaitlistPromotionEmailData
}

func (m *mockEmailService) SendRegistrationConfirmation(ctx context.Context, data *domain.RegistrationConfirmationEmailData) error {
	m.confirmations = append(m.confirmations, data)
	return m.err
}

func (m *mockEmailService) SendWaitlistPromotion(ctx context.Context, data *domain.WaitlistPromotionEmailData) error {
	m.promotions = append(m.promotions, data)
	return m.err
}

type mockHistoryRepository struct {
	entries []*domain.HistoryEntry
	err     error
}

func (m *mockHistoryRepository) Create(ctx context.Context, entry *domain.HistoryEntry) error {
	if m.err != nil {
		return m.err
	}
	entry.ID = "hist-new"
	m.entries = append(m.entries, entry)
	return nil
}

func (m *mockHistoryRepository) List(ctx context.Context, params domain.PaginationParams) ([]*domain.HistoryEntry, int, error) {
	if m.err != nil {
		return nil, 0, m.err
	}
	return m.entries, len(m.entries), nil
}
