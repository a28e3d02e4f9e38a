package board

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"talentbridge-engine/internal/aggregate"
	"talentbridge-engine/internal/domain"
	"talentbridge-engine/internal/events"
	"talentbridge-engine/internal/invite"
	"talentbridge-engine/internal/store"
)

var (
	// ErrBoardNotReady rejects offer actions before aggregation succeeded.
	ErrBoardNotReady = errors.New("request board is not loaded")
	// ErrOfferInProgress rejects opening a second offer flow.
	ErrOfferInProgress = errors.New("another offer is already in progress")
	// ErrNoActiveOffer rejects cancel/submit outside the detail-entry step.
	ErrNoActiveOffer = errors.New("no offer detail entry is open")
	// ErrUnknownStudent rejects offers for students not on the board.
	ErrUnknownStudent = errors.New("student is not on the request board")
	// ErrAlreadyInvited suppresses duplicate sends: no network call is made
	// and tracked state is left untouched.
	ErrAlreadyInvited = errors.New("student was already invited this session")
	// ErrCompanyUnavailable blocks composition when the company profile
	// cannot be fetched; no invite submission happens in that case.
	ErrCompanyUnavailable = errors.New("company profile unavailable")
)

// Gateway is the slice of the remote gateway the board drives mutations
// through.
type Gateway interface {
	FetchCompanyProfile(ctx context.Context, companyID string) (*domain.CompanyProfile, error)
	SubmitInvite(ctx context.Context, payload domain.InvitePayload) (*domain.InviteResult, error)
}

// AuditLog records submission attempts. Recording is best-effort; failures
// are logged and never affect the flow.
type AuditLog interface {
	RecordAttempt(ctx context.Context, a store.InviteAttempt) (store.InviteAttempt, error)
}

type Publisher interface {
	Publish(evt string)
}

type Deps struct {
	CompanyID  string
	Gateway    Gateway
	Aggregator *aggregate.Aggregator
	Tracker    *invite.Tracker
	Audit      AuditLog
	Hub        Publisher
	Log        *logrus.Entry
}

// Board holds one company's request board plus the single offer flow over
// it. All exported methods are safe for concurrent use; network calls run
// outside the lock.
type Board struct {
	deps Deps

	mu       sync.Mutex
	load     LoadState
	loadErr  string
	data     *aggregate.Board
	wallet   string // company wallet, resolved during load
	phase    Phase
	selected selectedStudent
	details  *domain.JobOfferDetails
}

type selectedStudent struct {
	id      string
	profile *domain.StudentProfile // nil when the lookup failed
}

// View is the board as the UI sees it.
type View struct {
	State             LoadState                         `json:"state"`
	Error             string                            `json:"error,omitempty"`
	Applications      []domain.JobApplication           `json:"applications"`
	Students          map[string]*domain.StudentProfile `json:"students"`
	Disabled          map[string]bool                   `json:"disabled"`
	Phase             Phase                             `json:"phase"`
	SelectedStudentID string                            `json:"selectedStudentId,omitempty"`
}

func New(deps Deps) *Board {
	return &Board{
		deps:  deps,
		load:  LoadUninitialized,
		phase: PhaseIdle,
	}
}

// Snapshot returns the current view, triggering aggregation on first use.
// While a load started by another caller is still running, the snapshot
// reports LOADING. A failed load is terminal: there is no retry affordance.
func (b *Board) Snapshot(ctx context.Context) View {
	b.mu.Lock()
	if b.load == LoadUninitialized {
		b.load = LoadLoading
		b.mu.Unlock()
		b.runLoad(ctx)
		b.mu.Lock()
	}
	defer b.mu.Unlock()

	v := View{
		State:             b.load,
		Error:             b.loadErr,
		Applications:      []domain.JobApplication{},
		Students:          map[string]*domain.StudentProfile{},
		Disabled:          b.deps.Tracker.Disabled(),
		Phase:             b.phase,
		SelectedStudentID: b.selected.id,
	}
	if b.data != nil {
		v.Applications = b.data.Applications
		v.Students = b.data.Students
	}
	return v
}

func (b *Board) runLoad(ctx context.Context) {
	// The company wallet rides along with the profile; a failure here only
	// costs the sender address, not the board.
	wallet := ""
	if profile, err := b.deps.Gateway.FetchCompanyProfile(ctx, b.deps.CompanyID); err != nil {
		b.deps.Log.WithError(err).Warn("company wallet lookup failed")
	} else {
		wallet = profile.WalletAddress
	}

	data, err := b.deps.Aggregator.Aggregate(ctx, b.deps.CompanyID)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.wallet = wallet
	if err != nil {
		b.load = LoadFailed
		b.loadErr = "Failed to fetch requests. Please try again."
		if errors.Is(err, aggregate.ErrMissingCompanyID) {
			b.loadErr = "No companyId found"
		}
		b.deps.Log.WithError(err).Error("request board load failed")
		return
	}
	b.load = LoadReady
	b.data = data
	b.publish(events.TypeRequestsLoaded, map[string]any{"count": len(data.Applications)})
}

// OpenOffer moves IDLE → DETAIL_ENTRY, binding the flow to the selected
// student. Already-invited students may still be selected; the guard sits in
// front of the network call, not the flow.
func (b *Board) OpenOffer(studentID string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.load != LoadReady {
		return ErrBoardNotReady
	}
	if !phaseAllowed(b.phase, PhaseDetailEntry) {
		return ErrOfferInProgress
	}
	profile, ok := b.data.Students[studentID]
	if !ok {
		return ErrUnknownStudent
	}

	b.selected = selectedStudent{id: studentID, profile: profile}
	b.phase = PhaseDetailEntry
	b.publish(events.TypeOfferOpened, map[string]any{"studentId": studentID})
	return nil
}

// CancelOffer moves DETAIL_ENTRY → IDLE and discards anything entered.
func (b *Board) CancelOffer() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.phase != PhaseDetailEntry {
		return ErrNoActiveOffer
	}
	b.phase = PhaseIdle
	b.selected = selectedStudent{}
	b.details = nil
	b.publish(events.TypeOfferCancelled, nil)
	return nil
}

// SubmitOffer closes the detail-entry step immediately, then fetches the
// company profile, composes the invite and submits it.
//
// Marking policy (kept deliberately): the student is marked invited once the
// submission attempt returns, whether the backend said success=false or the
// transport failed; only the logs tell those apart. A company-profile
// failure aborts before any submission, so the student stays eligible.
func (b *Board) SubmitOffer(ctx context.Context, details domain.JobOfferDetails) (*domain.InviteResult, error) {
	b.mu.Lock()
	if b.phase != PhaseDetailEntry {
		b.mu.Unlock()
		return nil, ErrNoActiveOffer
	}
	student := b.selected
	b.details = &details
	b.phase = PhaseSubmitting
	b.mu.Unlock()

	defer b.resetFlow()

	if b.deps.Tracker.IsDisabled(student.id) {
		return nil, ErrAlreadyInvited
	}

	company, err := b.deps.Gateway.FetchCompanyProfile(ctx, b.deps.CompanyID)
	if err != nil {
		b.deps.Log.WithError(err).Error("company profile fetch failed, invite aborted")
		return nil, fmt.Errorf("%w: %v", ErrCompanyUnavailable, err)
	}

	profile := student.profile
	if profile == nil {
		// lookup failed during aggregation; send with what we have
		profile = &domain.StudentProfile{ID: student.id}
	}
	payload := invite.Compose(*profile, *company, details, b.senderWallet())

	res, submitErr := b.deps.Gateway.SubmitInvite(ctx, payload)

	// The attempt returned; from here on the student counts as invited.
	b.deps.Tracker.MarkInvited(student.id)
	b.recordAttempt(ctx, student.id, details.Position, res, submitErr)
	b.publish(events.TypeInviteSent, map[string]any{"studentId": student.id})

	log := b.deps.Log.WithField("studentId", student.id)
	switch {
	case submitErr != nil:
		log.WithError(submitErr).Error("invite submission failed")
		return nil, submitErr
	case !res.Success:
		log.WithField("message", res.Message).Warn("invite refused by backend")
	default:
		log.Info("invite sent")
	}
	return res, nil
}

func (b *Board) resetFlow() {
	b.mu.Lock()
	b.phase = PhaseIdle
	b.selected = selectedStudent{}
	b.details = nil
	b.mu.Unlock()
}

func (b *Board) senderWallet() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.wallet
}

func (b *Board) recordAttempt(ctx context.Context, studentID, position string, res *domain.InviteResult, submitErr error) {
	if b.deps.Audit == nil {
		return
	}
	a := store.InviteAttempt{StudentID: studentID, Position: position}
	switch {
	case submitErr != nil:
		a.Message = submitErr.Error()
	default:
		a.Success = res.Success
		a.Message = res.Message
	}
	if _, err := b.deps.Audit.RecordAttempt(ctx, a); err != nil {
		b.deps.Log.WithError(err).Warn("invite audit write failed")
	}
}

func (b *Board) publish(typ string, data any) {
	if b.deps.Hub == nil {
		return
	}
	b.deps.Hub.Publish(events.Make("", typ, data))
}
