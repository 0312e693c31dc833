package models

import (
	"time"

	"github.com/m04kA/Park-ReservationService/internal/domain"
)

// CreateVisitTypeRequest запрос на создание типа визита
type CreateVisitTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ToDomain конвертирует request в domain модель
func (r *CreateVisitTypeRequest) ToDomain() *domain.VisitType {
	return &domain.VisitType{
		Name:        r.Name,
		Description: r.Description,
	}
}

// VisitTypeResponse ответ с данными типа визита
type VisitTypeResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// VisitTypeListResponse ответ со списком типов визитов
type VisitTypeListResponse struct {
	VisitTypes []VisitTypeResponse `json:"visitTypes"`
}

// FromDomainVisitType конвертирует domain модель в DTO
func FromDomainVisitType(vt *domain.VisitType) *VisitTypeResponse {
	return &VisitTypeResponse{
		ID:          vt.ID,
		Name:        vt.Name,
		Description: vt.Description,
		CreatedAt:   vt.CreatedAt,
	}
}

// FromDomainVisitTypeList конвертирует список domain моделей в DTO
func FromDomainVisitTypeList(types []*domain.VisitType) *VisitTypeListResponse {
	resp := &VisitTypeListResponse{
		VisitTypes: make([]VisitTypeResponse, 0, len(types)),
	}

	for _, vt := range types {
		resp.VisitTypes = append(resp.VisitTypes, *FromDomainVisitType(vt))
	}

	return resp
}
