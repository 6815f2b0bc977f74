package pin

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/payflowhq/payflow/internal/domain"
	"github.com/payflowhq/payflow/internal/pkg"
)

// Service manages transaction PIN credentials. It implements
// pkg.CredentialStore so money mutations can be gated behind PIN confirmation.
type Service interface {
	pkg.CredentialStore
}

// pinService implements Service over the user repository. PINs are stored as
// bcrypt hashes on the user row; successful set and confirm operations are
// recorded in the recent-activity feed.
type pinService struct {
	userRepo domain.UserRepository
	recorder domain.ActivityRecorder
}

// NewService creates a new pin Service. Panics if userRepo or recorder is nil.
func NewService(userRepo domain.UserRepository, recorder domain.ActivityRecorder) Service {
	if userRepo == nil {
		panic("pin.NewService: userRepo must not be nil")
	}
	if recorder == nil {
		panic("pin.NewService: recorder must not be nil")
	}
	return &pinService{userRepo: userRepo, recorder: recorder}
}

// HasPin reports whether the user has a PIN on file.
func (s *pinService) HasPin(ctx context.Context, userID uint) (bool, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}
	return user.HasPin(), nil
}

// SetPin hashes and stores a new PIN for the user. The code must be exactly
// four digits. Overwriting an existing PIN is allowed; confirmation of the old
// PIN is the caller's responsibility.
func (s *pinService) SetPin(ctx context.Context, userID uint, code string) error {
	if err := validateCode(code); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return domain.NewAppError(domain.CodeInternal, "failed to hash pin code", err)
	}

	user.PinHash = string(hash)
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.recorder.Record(user.ID, domain.ActivityCreatePin, user.Email)
	return nil
}

// ConfirmPin checks the given code against the stored PIN hash.
func (s *pinService) ConfirmPin(ctx context.Context, userID uint, code string) error {
	if err := validateCode(code); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !user.HasPin() {
		return domain.NewAppError(domain.CodeValidation, "no pin code on file", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PinHash), []byte(code)); err != nil {
		return domain.NewAppError(domain.CodeUnauthorized, "incorrect pin code", nil)
	}

	s.recorder.Record(user.ID, domain.ActivityConfirmPin, user.Email)
	return nil
}

// validateCode rejects anything that is not exactly four ASCII digits.
func validateCode(code string) error {
	if len(code) != pkg.PinLength {
		return domain.NewAppError(domain.CodeValidation, "pin code must be exactly 4 digits", nil)
	}
	for _, r := range code {
		if r < '0' || r > '9' {
			return domain.NewAppError(domain.CodeValidation, "pin code must be exactly 4 digits", nil)
		}
	}
	return nil
}
