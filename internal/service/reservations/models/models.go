package models

import (
	"errors"
	"time"

	"github.com/m04kA/Park-ReservationService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// ListReservationsRequest запрос на получение списка броней
type ListReservationsRequest struct {
	DateFrom        *time.Time `json:"dateFrom,omitempty"`        // Начало периода (опционально)
	DateTo          *time.Time `json:"dateTo,omitempty"`          // Конец периода (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	VisitTypeID     *int64     `json:"visitTypeId,omitempty"`     // Фильтр по типу визита (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые и просроченные брони
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationFilter, error) {
	filter := domain.ReservationFilter{
		DateFrom:        r.DateFrom,
		DateTo:          r.DateTo,
		VisitTypeID:     r.VisitTypeID,
		IncludeInactive: r.IncludeInactive,
	}

	// Конвертируем статус если указан
	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// CompanionResponse данные сопровождающего
type CompanionResponse struct {
	NationalID string `json:"nationalId"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
}

// VisitorResponse данные посетителя
type VisitorResponse struct {
	ID         int64  `json:"id"`
	NationalID string `json:"nationalId"`
	Name       string `json:"name"`
	Surname    string `json:"surname,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Email      string `json:"email,omitempty"`
	Age        int    `json:"age"`
}

// ChangeRecordResponse запись журнала изменений брони
type ChangeRecordResponse struct {
	Actor       string    `json:"actor"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ReservationResponse ответ с полными данными брони
type ReservationResponse struct {
	ID           int64  `json:"id"`
	SlotID       int64  `json:"slotId"`
	VisitTypeID  int64  `json:"visitTypeId"`
	VisitorCount int    `json:"visitorCount"`
	Status       string `json:"status"`

	// Денормализованные данные для отображения
	SlotDate      string `json:"slotDate"`      // "2026-03-15"
	SlotStartTime string `json:"slotStartTime"` // "10:00"
	SlotEndTime   string `json:"slotEndTime"`   // "12:00"
	VisitTypeName string `json:"visitTypeName"`

	Visitor    VisitorResponse        `json:"visitor"`
	Companions []CompanionResponse    `json:"companions"`
	Changes    []ChangeRecordResponse `json:"changes,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListItem краткие данные брони в списке:
// идентификаторы, статус, основной посетитель и его сопровождающие
type ReservationListItem struct {
	ID             int64               `json:"id"`
	VisitorID      int64               `json:"visitorId"`
	VisitorName    string              `json:"visitorName"`
	VisitorSurname string              `json:"visitorSurname,omitempty"`
	SlotID         int64               `json:"slotId"`
	VisitTypeID    int64               `json:"visitTypeId"`
	VisitorCount   int                 `json:"visitorCount"`
	Status         string              `json:"status"`
	Companions     []CompanionResponse `json:"companions"`
	CreatedAt      time.Time           `json:"createdAt"`
	UpdatedAt      time.Time           `json:"updatedAt"`
}

// ReservationListResponse ответ со списком броней
type ReservationListResponse struct {
	Reservations []ReservationListItem `json:"reservations"`
}

// Методы конвертации

// FromDomainReservationList конвертирует список domain моделей в DTO.
// visitors и companions — справочники по ID основного посетителя брони.
func FromDomainReservationList(
	reservations []*domain.Reservation,
	visitors map[int64]*domain.Visitor,
	companions map[int64][]*domain.Companion,
) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationListItem, 0, len(reservations)),
	}

	for _, res := range reservations {
		item := ReservationListItem{
			ID:           res.ID,
			VisitorID:    res.VisitorID,
			SlotID:       res.SlotID,
			VisitTypeID:  res.VisitTypeID,
			VisitorCount: res.VisitorCount,
			Status:       string(res.Status),
			Companions:   make([]CompanionResponse, 0, len(companions[res.VisitorID])),
			CreatedAt:    res.CreatedAt,
			UpdatedAt:    res.UpdatedAt,
		}

		if visitor := visitors[res.VisitorID]; visitor != nil {
			item.VisitorName = visitor.Name
			item.VisitorSurname = visitor.Surname
		}

		for _, c := range companions[res.VisitorID] {
			item.Companions = append(item.Companions, CompanionResponse{
				NationalID: c.NationalID,
				Name:       c.Name,
				Age:        c.Age,
			})
		}

		resp.Reservations = append(resp.Reservations, item)
	}

	return resp
}

// ToDomainReservationStatus конвертирует строку в domain.ReservationStatus с валидацией
func ToDomainReservationStatus(status string) (domain.ReservationStatus, error) {
	s := domain.ReservationStatus(status)

	validStatuses := []domain.ReservationStatus{
		domain.StatusActive,
		domain.StatusUsed,
		domain.StatusCancelled,
		domain.StatusExpired,
	}

	for _, valid := range validStatuses {
		if s == valid {
			return s, nil
		}
	}

	return "", ErrInvalidStatus
}
