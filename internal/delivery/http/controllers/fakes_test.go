package controllers

import (
	"context"
	"io"
	"log/slog"

	"gameonbaby/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeRegistrationService implements domain.RegistrationService for handler tests.
type fakeRegistrationService struct {
	registerErr         error
	registerResult      *domain.RegistrationResult
	lastRegisterInput   domain.RegisterInput
	lastRegisterActorID string
	unregisterErr       error
	lastUnregisterEvent string
	lastUnregisterEmail string
	setAttendedErr      error
	setAttendedResult   *domain.Registration
	lastAttendedID      string
	lastAttendedFlag    bool
	deleteErr           error
	lastDeleteID        string
	lastDeleteActorID   string
	promoteErr          error
	promoteResult       *domain.Registration
	lastPromoteEventID  string
	lastPromoteEntryID  string
	lastPromoteActorID  string
	moveErr             error
	moveResult          *domain.WaitingListEntry
	lastMoveEventID     string
	lastMoveRegID       string
	listErr             error
	listResult          []*domain.RegistrationWithPayment
	countErr            error
	countResults        []int
	countCalls          int
	lastListEventID     string
}

func (f *fakeRegistrationService) Register(_ context.Context, input domain.RegisterInput, actorID string) (*domain.RegistrationResult, error) {
	f.lastRegisterInput = input
	f.lastRegisterActorID = actorID
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	return f.registerResult, nil
}

func (f *fakeRegistrationService) Unregister(_ context.Context, eventID, email string) error {
	f.lastUnregisterEvent = eventID
	f.lastUnregisterEmail = email
	return f.unregisterErr
}

func (f *fakeRegistrationService) SetAttended(_ context.Context, registrationID string, attended bool) (*domain.Registration, error) {
	f.lastAttendedID = registrationID
	f.lastAttendedFlag = attended
	if f.setAttendedErr != nil {
		return nil, f.setAttendedErr
	}
	return f.setAttendedResult, nil
}

func (f *fakeRegistrationService) DeleteByModerator(_ context.Context, registrationID, actorID string) error {
	f.lastDeleteID = registrationID
	f.lastDeleteActorID = actorID
	return f.deleteErr
}

func (f *fakeRegistrationService) PromoteFromWaitingList(_ context.Context, eventID, waitingListID, actorID string) (*domain.Registration, error) {
	f.lastPromoteEventID = eventID
	f.lastPromoteEntryID = waitingListID
	f.lastPromoteActorID = actorID
	if f.promoteErr != nil {
		return nil, f.promoteErr
	}
	return f.promoteResult, nil
}

func (f *fakeRegistrationService) MoveToWaitingList(_ context.Context, eventID, registrationID, actorID string) (*domain.WaitingListEntry, error) {
	f.lastMoveEventID = eventID
	f.lastMoveRegID = registrationID
	if f.moveErr != nil {
		return nil, f.moveErr
	}
	return f.moveResult, nil
}

func (f *fakeRegistrationService) ListParticipants(_ context.Context, eventID string) ([]*domain.RegistrationWithPayment, error) {
	f.lastListEventID = eventID
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.listResult != nil {
		return f.listResult, nil
	}
	return []*domain.RegistrationWithPayment{}, nil
}

func (f *fakeRegistrationService) CountParticipants(_ context.Context, eventID string) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	if len(f.countResults) == 0 {
		return len(f.listResult), nil
	}
	i := f.countCalls
	if i >= len(f.countResults) {
		i = len(f.countResults) - 1
	}
	f.countCalls++
	return f.countResults[i], nil
}

// fakePaymentService implements domain.PaymentService.
type fakePaymentService struct {
	setPaidErr    error
	setPaidResult *domain.Payment
	lastRegID     string
	lastPaid      bool
}

func (f *fakePaymentService) SetPaid(_ context.Context, registrationID string, paid bool) (*domain.Payment, error) {
	f.lastRegID = registrationID
	f.lastPaid = paid
	if f.setPaidErr != nil {
		return nil, f.setPaidErr
	}
	return f.setPaidResult, nil
}

// fakeEventService implements domain.EventService.
type fakeEventService struct {
	createErr         error
	lastCreated       *domain.Event
	lastCreateActorID string
	getErr            error
	getResult         *domain.Event
	listVisibleErr    error
	listVisibleResult []*domain.Event
	listAllErr        error
	listAllResult     []*domain.Event
	updateErr         error
	updateResult      *domain.Event
	lastUpdateID      string
	lastUpdateInput   domain.UpdateEventInput
	lastUpdateActorID string
	deleteErr         error
	lastDeleteID      string
	lastDeleteActorID string
}

func (f *fakeEventService) CreateEvent(_ context.Context, event *domain.Event, actorID string) error {
	f.lastCreated = event
	f.lastCreateActorID = actorID
	if f.createErr != nil {
		return f.createErr
	}
	event.ID = "ev-created"
	return nil
}

func (f *fakeEventService) GetEvent(_ context.Context, id string) (*domain.Event, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getResult, nil
}

func (f *fakeEventService) ListVisibleEvents(_ context.Context) ([]*domain.Event, error) {
	if f.listVisibleErr != nil {
		return nil, f.listVisibleErr
	}
	if f.listVisibleResult != nil {
		return f.listVisibleResult, nil
	}
	return []*domain.Event{}, nil
}

func (f *fakeEventService) ListAllEvents(_ context.Context) ([]*domain.Event, error) {
	if f.listAllErr != nil {
		return nil, f.listAllErr
	}
	if f.listAllResult != nil {
		return f.listAllResult, nil
	}
	return []*domain.Event{}, nil
}

func (f *fakeEventService) UpdateEvent(_ context.Context, id string, input domain.UpdateEventInput, actorID string) (*domain.Event, error) {
	f.lastUpdateID = id
	f.lastUpdateInput = input
	f.lastUpdateActorID = actorID
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateResult, nil
}

func (f *fakeEventService) DeleteEvent(_ context.Context, id string, actorID string) error {
	f.lastDeleteID = id
	f.lastDeleteActorID = actorID
	return f.deleteErr
}

// fakeWaitingListService implements domain.WaitingListService.
type fakeWaitingListService struct {
	joinErr       error
	joinResult    *domain.WaitingListEntry
	lastJoinInput domain.JoinWaitingListInput
	leaveErr      error
	lastLeaveID   string
	lastLeaveMail string
	listErr       error
	listResult    []*domain.WaitingListEntry
}

func (f *fakeWaitingListService) Join(_ context.Context, input domain.JoinWaitingListInput) (*domain.WaitingListEntry, error) {
	f.lastJoinInput = input
	if f.joinErr != nil {
		return nil, f.joinErr
	}
	return f.joinResult, nil
}

func (f *fakeWaitingListService) Leave(_ context.Context, eventID, email string) error {
	f.lastLeaveID = eventID
	f.lastLeaveMail = email
	return f.leaveErr
}

func (f *fakeWaitingListService) ListByEvent(_ context.Context, eventID string) ([]*domain.WaitingListEntry, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.listResult != nil {
		return f.listResult, nil
	}
	return []*domain.WaitingListEntry{}, nil
}

// fakeNoShowService implements domain.NoShowService.
type fakeNoShowService struct {
	candidatesErr    error
	candidatesResult []*domain.NoShowCandidate
	importErr        error
	importResult     int
	lastImportEvent  string
	lastImportCount  int
	createErr        error
	lastCreated      *domain.NoShow
	listErr          error
	listResult       []*domain.NoShow
	feePaidErr       error
	lastFeePaidID    string
	lastFeePaidFlag  bool
}

func (f *fakeNoShowService) Candidates(_ context.Context, eventID string) ([]*domain.NoShowCandidate, error) {
	if f.candidatesErr != nil {
		return nil, f.candidatesErr
	}
	return f.candidatesResult, nil
}

func (f *fakeNoShowService) BulkImport(_ context.Context, eventID string, candidates []*domain.NoShowCandidate) (int, error) {
	f.lastImportEvent = eventID
	f.lastImportCount = len(candidates)
	if f.importErr != nil {
		return 0, f.importErr
	}
	return f.importResult, nil
}

func (f *fakeNoShowService) Create(_ context.Context, n *domain.NoShow) error {
	f.lastCreated = n
	return f.createErr
}

func (f *fakeNoShowService) ListByEvent(_ context.Context, eventID string) ([]*domain.NoShow, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	if f.listResult != nil {
		return f.listResult, nil
	}
	return []*domain.NoShow{}, nil
}

func (f *fakeNoShowService) SetFeePaid(_ context.Context, id string, feePaid bool) error {
	f.lastFeePaidID = id
	f.lastFeePaidFlag = feePaid
	return f.feePaidErr
}

// fakeUserService implements domain.UserService.
type fakeUserService struct {
	ensureErr        error
	ensureResult     *domain.User
	lastEnsureIdent  *domain.Identity
	lastEnsureName   string
	resolveRole      domain.Role
	updateRoleErr    error
	updateRoleResult *domain.User
	lastRoleUserID   string
	lastRole         domain.Role
	searchErr        error
	searchResult     []*domain.User
	searchTotal      int
	lastSearchQuery  string
	lastSearchParams domain.PaginationParams
}

func (f *fakeUserService) EnsureUser(_ context.Context, ident *domain.Identity, name string) (*domain.User, error) {
	f.lastEnsureIdent = ident
	f.lastEnsureName = name
	if f.ensureErr != nil {
		return nil, f.ensureErr
	}
	return f.ensureResult, nil
}

func (f *fakeUserService) ResolveRole(_ context.Context, _ *domain.Identity) (domain.Role, error) {
	return f.resolveRole, nil
}

func (f *fakeUserService) UpdateRole(_ context.Context, userID string, role domain.Role) (*domain.User, error) {
	f.lastRoleUserID = userID
	f.lastRole = role
	if f.updateRoleErr != nil {
		return nil, f.updateRoleErr
	}
	return f.updateRoleResult, nil
}

func (f *fakeUserService) Search(_ context.Context, query string, params domain.PaginationParams) ([]*domain.User, int, error) {
	f.lastSearchQuery = query
	f.lastSearchParams = params
	if f.searchErr != nil {
		return nil, 0, f.searchErr
	}
	return f.searchResult, f.searchTotal, nil
}

// fakeHistoryService implements domain.HistoryService.
type fakeHistoryService struct {
	listErr    error
	listResult []*domain.HistoryEntry
	listTotal  int
	lastParams domain.PaginationParams
}

func (f *fakeHistoryService) List(_ context.Context, params domain.PaginationParams) ([]*domain.HistoryEntry, int, error) {
	f.lastParams = params
	if f.listErr != nil {
		return nil, 0, f.listErr
	}
	return f.listResult, f.listTotal, nil
}
