package reset_slot

import "context"

type ResetService interface {
	Reset(ctx context.Context, slotNumber int) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
