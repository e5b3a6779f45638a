package store

import "errors"

var (
	ErrProductNotFound   = errors.New("product not found")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrEmailRegistered   = errors.New("email already registered")
	ErrWalletNotFound    = errors.New("wallet not found")
	ErrWalletExists      = errors.New("wallet already set up")
	ErrBadCredentials    = errors.New("invalid email or password")
	ErrWrongPassword     = errors.New("incorrect password")
	ErrAdminNotFound     = errors.New("admin not found")
	ErrUsernameTaken     = errors.New("username already exists")
)
