package create_reservation

import "errors"

var (
	// ErrSlotNotFound возвращается, когда выбранный слот не найден
	ErrSlotNotFound = errors.New("create_reservation: slot not found")

	// ErrVisitTypeNotFound возвращается, когда тип визита не найден
	ErrVisitTypeNotFound = errors.New("create_reservation: visit type not found")

	// ErrCapacityExceeded возвращается, когда группа посетителей
	// не помещается в оставшуюся вместимость слота
	ErrCapacityExceeded = errors.New("create_reservation: slot capacity exceeded")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
