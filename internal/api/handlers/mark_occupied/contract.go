package mark_occupied

import "context"

type OccupancyService interface {
	MarkOccupied(ctx context.Context, slotNumber int) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
