package create_reservation

import (
	"time"

	"github.com/m04kA/Park-ReservationService/internal/domain"
	createReservation "github.com/m04kA/Park-ReservationService/internal/usecase/create_reservation"
)

// CompanionRequest данные сопровождающего в HTTP запросе
type CompanionRequest struct {
	NationalID string `json:"nationalId"`
	Name       string `json:"name"`
	Age        int    `json:"age"`
}

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	NationalID  string             `json:"nationalId"`
	Name        string             `json:"name"`
	Surname     string             `json:"surname,omitempty"`
	Phone       string             `json:"phone,omitempty"`
	Email       string             `json:"email,omitempty"`
	Age         int                `json:"age"`
	Companions  []CompanionRequest `json:"companions,omitempty"`
	SlotID      int64              `json:"slotId"`
	VisitTypeID int64              `json:"visitTypeId"`
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
	CreatedAt     string `json:"createdAt"`
	UpdatedAt     string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	companions := make([]createReservation.CompanionInput, 0, len(r.Companions))
	for _, c := range r.Companions {
		companions = append(companions, createReservation.CompanionInput{
			NationalID: c.NationalID,
			Name:       c.Name,
			Age:        c.Age,
		})
	}

	return &createReservation.Request{
		NationalID:  r.NationalID,
		Name:        r.Name,
		Surname:     r.Surname,
		Phone:       r.Phone,
		Email:       r.Email,
		Age:         r.Age,
		Companions:  companions,
		SlotID:      r.SlotID,
		VisitTypeID: r.VisitTypeID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
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
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     resp.UpdatedAt.Format(time.RFC3339),
	}
}
