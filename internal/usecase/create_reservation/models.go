package create_reservation

import (
	"time"

	"github.com/m04kA/Park-ReservationService/pkg/types"
)

// CompanionInput данные сопровождающего в запросе на бронирование
type CompanionInput struct {
	NationalID string // Национальный идентификатор (RUT)
	Name       string // Имя
	Age        int    // Возраст
}

// Request модель запроса на создание брони
type Request struct {
	// Основной посетитель
	NationalID string // Национальный идентификатор (RUT)
	Name       string // Имя
	Surname    string // Фамилия
	Phone      string // Телефон
	Email      string // Email
	Age        int    // Возраст

	Companions  []CompanionInput // Сопровождающие (может быть пусто)
	SlotID      int64            // ID выбранного слота
	VisitTypeID int64            // ID типа визита
}

// Response модель ответа с созданной бронью
type Response struct {
	ID           int64  // ID созданной брони
	VisitorID    int64  // ID посетителя
	SlotID       int64  // ID слота
	VisitTypeID  int64  // ID типа визита
	VisitorCount int    // Количество посетителей (1 + сопровождающие)
	Status       string // Статус брони

	// Денормализованные данные для отображения
	SlotDate      time.Time        // Дата слота
	SlotStartTime types.TimeString // Время начала
	SlotEndTime   types.TimeString // Время окончания
	VisitTypeName string           // Название типа визита

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
