package wallet

import (
	"context"

	"github.com/gin-gonic/gin"

	"github.com/payflowhq/payflow/internal/domain"
	"github.com/payflowhq/payflow/internal/middleware"
	"github.com/payflowhq/payflow/internal/pkg"
)

// WalletHandler handles REST API requests for the wallet resource. Money
// mutations are gated behind PIN confirmation: each request opens a fresh
// confirmation cycle against the credential store and submits the supplied
// code, so the mutation runs only after the store accepts it. A user without
// a PIN on file sets one with the same request.
type WalletHandler struct {
	svc  domain.MoneyService
	pins pkg.CredentialStore
}

// NewHandler creates a new WalletHandler with the given service and
// credential store.
func NewHandler(svc domain.MoneyService, pins pkg.CredentialStore) *WalletHandler {
	return &WalletHandler{svc: svc, pins: pins}
}

// Get handles GET /api/v1/wallet.
func (h *WalletHandler) Get(c *gin.Context) {
	wallet, err := h.svc.GetWallet(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, wallet)
}

// Send handles POST /api/v1/wallet/send.
func (h *WalletHandler) Send(c *gin.Context) {
	var req SendMoneyRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	amount, err := pkg.ParseAmount(req.Amount)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	userID := middleware.GetUserID(c)
	receipt, err := h.gated(c.Request.Context(), userID, req.PinCode, func(ctx context.Context) (*domain.Receipt, error) {
		return h.svc.SendMoney(ctx, userID, req.RecipientID, amount)
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, receipt)
}

// TopUp handles POST /api/v1/wallet/topup.
func (h *WalletHandler) TopUp(c *gin.Context) {
	var req AddMoneyRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	amount, err := pkg.ParseAmount(req.Amount)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	userID := middleware.GetUserID(c)
	receipt, err := h.gated(c.Request.Context(), userID, req.PinCode, func(ctx context.Context) (*domain.Receipt, error) {
		return h.svc.AddMoney(ctx, userID, amount)
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, receipt)
}

// gated runs mutate behind a PIN confirmation cycle. The mutation result is
// captured through the pending action closure; when the gate rejects the code
// the mutation never runs and the receipt stays nil.
func (h *WalletHandler) gated(ctx context.Context, userID uint, code string, mutate func(ctx context.Context) (*domain.Receipt, error)) (*domain.Receipt, error) {
	var receipt *domain.Receipt

	gate := pkg.NewPinGate(h.pins)
	if _, err := gate.Open(ctx, userID, func(ctx context.Context) error {
		r, err := mutate(ctx)
		if err != nil {
			return err
		}
		receipt = r
		return nil
	}); err != nil {
		return nil, err
	}

	if err := gate.Submit(ctx, code); err != nil {
		return nil, err
	}
	return receipt, nil
}
