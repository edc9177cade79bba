package create_booking

import (
	"time"

	"github.com/kritsadaK/TTB-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	PackageID      string           // ID пакета (тур или трансфер)
	Date           types.CivilDate  // Дата бронирования
	Time           types.TimeString // Время слота
	Adults         int              // Взрослые
	Children       int              // Дети
	PickupLocation string           // Место посадки (обязательно для трансферов)
	ContactName    string           // Имя контакта
	ContactEmail   string           // Email контакта
	ContactPhone   string           // Телефон контакта
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID             string           // ID созданного бронирования
	PackageID      string           // ID пакета
	PackageTitle   string           // Название пакета
	Date           types.CivilDate  // Дата бронирования
	Time           types.TimeString // Время слота
	Adults         int              // Взрослые
	Children       int              // Дети
	PickupLocation string           // Место посадки
	ContactName    string           // Имя контакта
	ContactEmail   string           // Email контакта
	ContactPhone   string           // Телефон контакта
	TotalCharge    float64          // Итоговая стоимость
	VehicleUnit    bool             // Бронирование занимает юнит транспорта
	CreatedAt      time.Time        // Время создания
}
