package visittypes

import "errors"

var (
	// ErrVisitTypeNotFound возвращается, когда тип визита не найден
	ErrVisitTypeNotFound = errors.New("visit type not found")

	// ErrDuplicateVisitType возвращается при попытке создать тип визита
	// с уже занятым названием
	ErrDuplicateVisitType = errors.New("visit type with this name already exists")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
