package pkg

import (
	"context"
	"sync"

	"github.com/payflowhq/payflow/internal/domain"
)

// PIN codes are exactly four digits.
const PinLength = 4

// GateState is the lifecycle position of a PinGate.
type GateState int

const (
	GateIdle GateState = iota
	GateFormOpen
	GateSubmitting
)

// GateMode distinguishes first-time PIN creation from confirmation.
type GateMode int

const (
	GateModeSet GateMode = iota
	GateModeConfirm
)

// CredentialStore is the external PIN credential boundary of a PinGate.
type CredentialStore interface {
	HasPin(ctx context.Context, userID uint) (bool, error)
	SetPin(ctx context.Context, userID uint, code string) error
	ConfirmPin(ctx context.Context, userID uint, code string) error
}

// PendingAction is a deferred sensitive mutation awaiting PIN resolution.
type PendingAction func(ctx context.Context) error

// PinGate guards sensitive mutations behind a short numeric secret.
//
// Lifecycle: Idle -> FormOpen{Set|Confirm} -> Submitting -> back to FormOpen
// on credential rejection, or Idle after the pending action resolves. The
// pending action runs at most once, never on rejection or cancel. A second
// Open while a cycle is in progress is refused rather than silently replacing
// the pending action.
type PinGate struct {
	store CredentialStore

	mu      sync.Mutex
	state   GateState
	mode    GateMode
	userID  uint
	pending PendingAction
}

// NewPinGate creates an idle PinGate over the given credential store.
// Panics if store is nil.
func NewPinGate(store CredentialStore) *PinGate {
	if store == nil {
		panic("pkg.NewPinGate: store must not be nil")
	}
	return &PinGate{store: store}
}

// State returns the gate's current lifecycle position.
func (g *PinGate) State() GateState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Mode returns the mode chosen by the last Open. Meaningless while Idle.
func (g *PinGate) Mode() GateMode {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.mode
}

// Open starts a confirmation cycle for the given user, holding pending until
// the PIN resolves. The mode is Set when the user has no PIN on file and
// Confirm otherwise. Returns ErrValidation-coded errors for a nil pending
// action and a conflict when a cycle is already in progress.
func (g *PinGate) Open(ctx context.Context, userID uint, pending PendingAction) (GateMode, error) {
	if pending == nil {
		return 0, domain.NewAppError(domain.CodeValidation, "pending action is required", nil)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.state != GateIdle {
		return 0, domain.NewAppError(domain.CodeAlreadyExists, "another confirmation is in progress", nil)
	}

	hasPin, err := g.store.HasPin(ctx, userID)
	if err != nil {
		return 0, err
	}

	g.mode = GateModeConfirm
	if !hasPin {
		g.mode = GateModeSet
	}
	g.state = GateFormOpen
	g.userID = userID
	g.pending = pending
	return g.mode, nil
}

// Submit presents a PIN code. The code must be exactly four digits; malformed
// input is rejected before any credential store call and the form stays open.
// On store acceptance the pending action is invoked exactly once and the gate
// returns to Idle regardless of the action's outcome; on store rejection the
// gate returns to FormOpen so the user may retry.
func (g *PinGate) Submit(ctx context.Context, code string) error {
	if !validPinCode(code) {
		return domain.NewAppError(domain.CodeValidation, "pin code must be exactly 4 digits", nil)
	}

	g.mu.Lock()
	if g.state != GateFormOpen {
		g.mu.Unlock()
		return domain.NewAppError(domain.CodeValidation, "no confirmation in progress", nil)
	}
	g.state = GateSubmitting
	mode := g.mode
	userID := g.userID
	g.mu.Unlock()

	var storeErr error
	if mode == GateModeSet {
		storeErr = g.store.SetPin(ctx, userID, code)
	} else {
		storeErr = g.store.ConfirmPin(ctx, userID, code)
	}

	if storeErr != nil {
		g.mu.Lock()
		g.state = GateFormOpen
		g.mu.Unlock()
		return storeErr
	}

	g.mu.Lock()
	pending := g.pending
	g.pending = nil
	g.state = GateIdle
	g.mu.Unlock()

	if pending == nil {
		return nil
	}
	return pending(ctx)
}

// Cancel abandons an open form and discards the pending action. It has no
// effect while a submission is in flight or while the gate is idle, so a
// cancel that races a submission cannot clear the action out from under it.
func (g *PinGate) Cancel() {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.state != GateFormOpen {
		return
	}
	g.pending = nil
	g.state = GateIdle
}

// validPinCode reports whether code is exactly PinLength ASCII digits.
func validPinCode(code string) bool {
	if len(code) != PinLength {
		return false
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
