package wallet

// SendMoneyRequest represents the input for transferring money. Amount is the
// display-formatted value as typed ("12,345.00"); the handler strips the
// formatting before dispatch. PinCode shape is checked by the confirmation
// gate, not the binding, so malformed codes follow the same path as wrong ones.
type SendMoneyRequest struct {
	RecipientID uint   `json:"recipient_id" form:"recipient_id" binding:"required"`
	Amount      string `json:"amount" form:"amount" binding:"required"`
	PinCode     string `json:"pin_code" form:"pin_code" binding:"required"`
}

// AddMoneyRequest represents the input for topping up the caller's wallet.
type AddMoneyRequest struct {
	Amount  string `json:"amount" form:"amount" binding:"required"`
	PinCode string `json:"pin_code" form:"pin_code" binding:"required"`
}
