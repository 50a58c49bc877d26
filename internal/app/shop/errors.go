package shop

import "errors"

var (
	ErrValidationFailed  = errors.New("validation_failed")
	ErrUnknownItem       = errors.New("unknown_item")
	ErrInsufficientFunds = errors.New("insufficient_funds")
	ErrItemLimit         = errors.New("item_limit_reached")
	ErrNotFound          = errors.New("not_found")
)
