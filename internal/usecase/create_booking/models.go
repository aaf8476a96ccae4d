package create_booking

import (
	"time"

	"github.com/moonbarber/MB-SiteService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	ServiceID     int64            // ID услуги
	BarberID      int64            // ID мастера
	CustomerName  string           // Имя клиента
	CustomerEmail string           // Email клиента
	CustomerPhone string           // Телефон клиента
	Date          time.Time        // Дата записи (без времени)
	StartTime     types.TimeString // Время начала слота (например, "10:00")
	Notes         *string          // Пожелания клиента (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID            int64            // ID созданной записи
	ServiceID     int64            // ID услуги
	BarberID      int64            // ID мастера
	CustomerName  string           // Имя клиента
	CustomerEmail string           // Email клиента
	CustomerPhone string           // Телефон клиента
	BookingDate   time.Time        // Дата записи
	StartTime     types.TimeString // Время начала
	Status        string           // Статус записи

	// Денормализованные данные для подтверждения
	ServiceName string  // Название услуги
	BarberName  string  // Имя мастера
	Notes       *string // Пожелания

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
