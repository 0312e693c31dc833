package create_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/Park-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Любая ошибка валидации отклоняет запрос до каких-либо изменений в БД.
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.NationalID) == "" {
		return fmt.Errorf("%w: nationalId is required", ErrInvalidInput)
	}
	if len(req.NationalID) > domain.MaxNationalIDLength {
		return fmt.Errorf("%w: nationalId must not exceed %d characters", ErrInvalidInput, domain.MaxNationalIDLength)
	}

	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if len(req.Name) > domain.MaxNameLength {
		return fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidInput, domain.MaxNameLength)
	}

	if req.Age < domain.MinAge || req.Age > domain.MaxAge {
		return fmt.Errorf("%w: age must be between %d and %d", ErrInvalidInput, domain.MinAge, domain.MaxAge)
	}

	if req.SlotID <= 0 {
		return fmt.Errorf("%w: slotId must be positive", ErrInvalidInput)
	}

	if req.VisitTypeID <= 0 {
		return fmt.Errorf("%w: visitTypeId must be positive", ErrInvalidInput)
	}

	visitorCount := 1 + len(req.Companions)
	if visitorCount > domain.MaxVisitorCount {
		return fmt.Errorf("%w: group size must not exceed %d visitors", ErrInvalidInput, domain.MaxVisitorCount)
	}

	for i, companion := range req.Companions {
		if strings.TrimSpace(companion.NationalID) == "" {
			return fmt.Errorf("%w: companion %d: nationalId is required", ErrInvalidInput, i+1)
		}
		if strings.TrimSpace(companion.Name) == "" {
			return fmt.Errorf("%w: companion %d: name is required", ErrInvalidInput, i+1)
		}
		if companion.Age < domain.MinAge || companion.Age > domain.MaxAge {
			return fmt.Errorf("%w: companion %d: age must be between %d and %d", ErrInvalidInput, i+1, domain.MinAge, domain.MaxAge)
		}
	}

	return nil
}
