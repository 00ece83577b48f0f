package repository

import "errors"

var (
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNotEnriched         = errors.New("transaction has no derived features")
	ErrRunNotFound         = errors.New("normalization run not found")
)
