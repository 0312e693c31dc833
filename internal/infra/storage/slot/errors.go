package slot

import "errors"

var (
	// ErrSlotNotFound возвращается, когда слот не найден
	ErrSlotNotFound = errors.New("slot.repository: slot not found")

	// ErrCapacityExceeded возвращается, когда запрошенное количество мест
	// превышает оставшуюся вместимость слота
	ErrCapacityExceeded = errors.New("slot.repository: capacity exceeded")

	// ErrDuplicateSlot возвращается при попытке создать слот на уже занятую
	// пару (дата, время начала)
	ErrDuplicateSlot = errors.New("slot.repository: slot already exists for date and start time")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("slot.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("slot.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("slot.repository: failed to scan row")
)
