package modify_reservation

import (
	"time"

	"github.com/m04kA/Park-ReservationService/pkg/types"
)

// Request модель запроса на изменение брони.
// Количество посетителей не редактируется — оно переносится из
// существующей брони без изменений.
type Request struct {
	ReservationID  int64  // ID изменяемой брони
	NewSlotID      int64  // ID целевого слота
	NewVisitTypeID int64  // ID целевого типа визита
	Actor          string // Идентификатор администратора для журнала изменений
}

// Response модель ответа с измененной бронью
type Response struct {
	ID           int64  // ID брони
	VisitorID    int64  // ID посетителя
	SlotID       int64  // ID нового слота
	VisitTypeID  int64  // ID нового типа визита
	VisitorCount int    // Количество посетителей (не изменилось)
	Status       string // Статус брони (не изменился)

	// Денормализованные данные для отображения
	SlotDate      time.Time        // Дата нового слота
	SlotStartTime types.TimeString // Время начала
	SlotEndTime   types.TimeString // Время окончания
	VisitTypeName string           // Название нового типа визита

	UpdatedAt time.Time // Время обновления
}
