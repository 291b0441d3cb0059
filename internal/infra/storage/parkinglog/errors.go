package parkinglog

import "errors"

var (
	// ErrActiveEntryNotFound возвращается, когда нет активной записи для закрытия
	ErrActiveEntryNotFound = errors.New("parkinglog.repository: active entry not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("parkinglog.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("parkinglog.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("parkinglog.repository: failed to scan row")
)
