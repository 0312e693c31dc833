package models

import (
	"time"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	"github.com/m04kA/Park-ReservationService/pkg/types"
)

// Request модели

// CreateSlotRequest запрос на создание слота
type CreateSlotRequest struct {
	SlotDate    string `json:"slotDate"`    // "2026-03-15"
	StartTime   string `json:"startTime"`   // "10:00"
	EndTime     string `json:"endTime"`     // "12:00"
	CapacityMax int    `json:"capacityMax"` // Максимальная вместимость
}

// ToDomain конвертирует request в domain модель
func (r *CreateSlotRequest) ToDomain() (*domain.Slot, error) {
	slotDate, err := time.Parse(domain.DateFormat, r.SlotDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &domain.Slot{
		SlotDate:    slotDate,
		StartTime:   startTime,
		EndTime:     endTime,
		CapacityMax: r.CapacityMax,
	}, nil
}

// ListSlotsRequest запрос на получение слотов за период
type ListSlotsRequest struct {
	DateFrom      *time.Time `json:"dateFrom,omitempty"`      // Начало периода (опционально)
	DateTo        *time.Time `json:"dateTo,omitempty"`        // Конец периода (опционально)
	OnlyAvailable bool       `json:"onlyAvailable,omitempty"` // Только слоты со свободными местами
}

// Response модели

// SlotResponse ответ с данными слота
type SlotResponse struct {
	ID           int64  `json:"id"`
	SlotDate     string `json:"slotDate"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	CapacityMax  int    `json:"capacityMax"`
	CapacityUsed int    `json:"capacityUsed"`
	Available    int    `json:"available"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SlotListResponse ответ со списком слотов
type SlotListResponse struct {
	Slots []SlotResponse `json:"slots"`
}

// FromDomainSlot конвертирует domain модель в DTO
func FromDomainSlot(s *domain.Slot) *SlotResponse {
	return &SlotResponse{
		ID:           s.ID,
		SlotDate:     s.SlotDate.Format(domain.DateFormat),
		StartTime:    s.StartTime.String(),
		EndTime:      s.EndTime.String(),
		CapacityMax:  s.CapacityMax,
		CapacityUsed: s.CapacityUsed,
		Available:    s.Available(),
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

// FromDomainSlotList конвертирует список domain моделей в DTO
func FromDomainSlotList(slots []*domain.Slot) *SlotListResponse {
	resp := &SlotListResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}

	for _, s := range slots {
		resp.Slots = append(resp.Slots, *FromDomainSlot(s))
	}

	return resp
}
