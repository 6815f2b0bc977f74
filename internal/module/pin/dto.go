package pin

// SetPinRequest represents the input for creating or replacing a PIN.
type SetPinRequest struct {
	Code string `json:"code" form:"code" binding:"required,len=4,numeric"`
}

// ConfirmPinRequest represents the input for confirming an existing PIN.
type ConfirmPinRequest struct {
	Code string `json:"code" form:"code" binding:"required,len=4,numeric"`
}

// PinStatusResponse reports whether the authenticated user has a PIN on file.
type PinStatusResponse struct {
	HasPin bool `json:"has_pin"`
}
