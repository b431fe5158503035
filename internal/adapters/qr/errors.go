package qr

import "errors"

// Sentinel kinds for QR errors.
var (
	ErrEmptyContent    = errors.New("qr content is empty")
	ErrEncode          = errors.New("qr encode failed")
	ErrUnknownRecovery = errors.New("unknown qr recovery level")
)
