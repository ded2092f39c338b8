package domain

import "errors"

// Классы ошибок ядра. Хендлеры маппят их на HTTP статусы,
// юзкейсы оборачивают с контекстом через fmt.Errorf("%w: ...").
var (
	ErrPermissionDenied    = errors.New("permission denied")
	ErrNotFound            = errors.New("not found")
	ErrAlreadyExists       = errors.New("already exists")
	ErrConflict            = errors.New("conflict")
	ErrInsufficientPayment = errors.New("insufficient payment")
	ErrInvalidArgument     = errors.New("invalid argument")
)
