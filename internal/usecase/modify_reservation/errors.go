package modify_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронь не найдена
	ErrReservationNotFound = errors.New("modify_reservation: reservation not found")

	// ErrSlotNotFound возвращается, когда целевой слот не найден
	ErrSlotNotFound = errors.New("modify_reservation: slot not found")

	// ErrVisitTypeNotFound возвращается, когда тип визита не найден
	ErrVisitTypeNotFound = errors.New("modify_reservation: visit type not found")

	// ErrCapacityExceeded возвращается, когда в целевом слоте не хватает мест;
	// бронь и счётчики слотов остаются без изменений
	ErrCapacityExceeded = errors.New("modify_reservation: target slot capacity exceeded")

	// ErrInvalidTransition возвращается при попытке изменить бронь
	// не в статусе active
	ErrInvalidTransition = errors.New("modify_reservation: reservation is not modifiable in its current status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("modify_reservation: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("modify_reservation: internal error")
)
