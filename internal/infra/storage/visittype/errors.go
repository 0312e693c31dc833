package visittype

import "errors"

var (
	// ErrVisitTypeNotFound возвращается, когда тип визита не найден
	ErrVisitTypeNotFound = errors.New("visittype.repository: visit type not found")

	// ErrDuplicateVisitType возвращается при попытке создать тип визита
	// с уже существующим названием
	ErrDuplicateVisitType = errors.New("visittype.repository: visit type name already exists")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("visittype.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("visittype.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("visittype.repository: failed to scan row")
)
