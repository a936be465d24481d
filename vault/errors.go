package vault

import "errors"

var (
	ErrArithmeticOverflow  = errors.New("arithmetic overflow: quantity exceeds 256-bit range")
	ErrZeroQuantity        = errors.New("conversion rounded to zero")
	ErrInsufficientShares  = errors.New("insufficient shares")
	ErrInsufficientAssets  = errors.New("insufficient assets")
	ErrBelowMinimumDeposit = errors.New("initial deposit below configured minimum")
	ErrInvalidAmount       = errors.New("amount must be a positive integer")
	ErrInvalidConfig       = errors.New("invalid vault config")
)
