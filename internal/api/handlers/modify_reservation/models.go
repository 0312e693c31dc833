package modify_reservation

import (
	"time"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	modifyReservation "github.com/m04kA/Park-ReservationService/internal/usecase/modify_reservation"
)

// ModifyReservationRequest HTTP request model
type ModifyReservationRequest struct {
	NewSlotID      int64 `json:"newSlotId"`
	NewVisitTypeID int64 `json:"newVisitTypeId"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID            int64  `json:"id"`
	VisitorID     int64  `json:"visitorId"`
	SlotID        int64  `json:"slotId"`
	VisitTypeID   int64  `json:"visitTypeId"`
	VisitorCount  int    `json:"visitorCount"`
	Status        string `json:"status"`
	SlotDate      string `json:"slotDate"`
	SlotStartTime string `json:"slotStartTime"`
	SlotEndTime   string `json:"slotEndTime"`
	VisitTypeName string `json:"visitTypeName"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ModifyReservationRequest) ToUseCaseRequest(reservationID int64, actor string) *modifyReservation.Request {
	return &modifyReservation.Request{
		ReservationID:  reservationID,
		NewSlotID:      r.NewSlotID,
		NewVisitTypeID: r.NewVisitTypeID,
		Actor:          actor,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *modifyReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:            resp.ID,
		VisitorID:     resp.VisitorID,
		SlotID:        resp.SlotID,
		VisitTypeID:   resp.VisitTypeID,
		VisitorCount:  resp.VisitorCount,
		Status:        resp.Status,
		SlotDate:      resp.SlotDate.Format(domain.DateFormat),
		SlotStartTime: resp.SlotStartTime.String(),
		SlotEndTime:   resp.SlotEndTime.String(),
		VisitTypeName: resp.VisitTypeName,
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
