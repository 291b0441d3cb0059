package ledger

import "errors"

var (
	// ErrInvalidSlot возвращается, когда слота с таким номером не существует
	ErrInvalidSlot = errors.New("invalid slot")

	// ErrSlotUnavailable возвращается при попытке забронировать занятый слот
	ErrSlotUnavailable = errors.New("slot not available")

	// ErrInvalidTransition возвращается, когда переход недопустим из текущего состояния слота
	ErrInvalidTransition = errors.New("invalid slot state transition")

	// ErrNotFound возвращается, когда на слоте нет активного бронирования
	ErrNotFound = errors.New("no active booking")

	// ErrValidation возвращается при пустых обязательных полях
	ErrValidation = errors.New("missing fields")

	// ErrInternal возвращается при ошибках хранилища
	ErrInternal = errors.New("ledger: internal error")
)
