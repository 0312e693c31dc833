package occupancy_report

import "time"

// Request модель запроса метрик загруженности.
// Все фильтры опциональны: nil = без ограничения.
type Request struct {
	DateFrom    *time.Time // Начало периода (включительно)
	DateTo      *time.Time // Конец периода (включительно)
	VisitTypeID *int64     // Фильтр по типу визита
}

// DateVisitors суммарное число посетителей на одну дату
type DateVisitors struct {
	Date     time.Time // Дата слота
	Visitors int       // Суммарное количество посетителей на эту дату
}

// Response метрики загруженности парка
type Response struct {
	TotalReservations int            // Количество броней (active + used)
	TotalVisitors     int            // Суммарное количество посетителей
	AggregateCapacity int            // Суммарная вместимость слотов периода
	OccupancyPercent  int            // Процент загруженности (0, если вместимость нулевая)
	Alert             *string        // Предупреждение при загруженности > 80%
	TopDates          []DateVisitors // До 5 самых загруженных дат, по убыванию
}
