package get_day_slots

import (
	"github.com/kritsadaK/TTB-BookingService/internal/domain"
	"github.com/kritsadaK/TTB-BookingService/pkg/types"
)

// Request модель запроса слотов пакета на дату
type Request struct {
	PackageID string          // ID пакета (тур или трансфер)
	Date      types.CivilDate // Гражданская дата в бизнес-таймзоне
}

// Response модель ответа со слотами на день
type Response struct {
	PackageID    string          // ID пакета
	PackageTitle string          // Название пакета
	Date         types.CivilDate // Запрошенная дата
	Slots        []Slot          // Слоты по возрастанию времени
}

// Slot слот с вычисленной занятостью и вместимостью
type Slot struct {
	Time           types.TimeString // Время начала слота
	Capacity       int              // Предельная вместимость
	BookedCount    int              // Занято юнитов
	AvailableUnits int              // Свободно юнитов (не бывает отрицательным)
	IsAvailable    bool             // Явный переключатель доступности
	MinimumPerson  int              // Минимум на первое бронирование
}

func fromDomainSlots(slots []domain.Slot) []Slot {
	result := make([]Slot, len(slots))
	for i, s := range slots {
		result[i] = Slot{
			Time:           s.Time,
			Capacity:       s.Capacity,
			BookedCount:    s.BookedCount,
			AvailableUnits: s.AvailableUnits(),
			IsAvailable:    s.IsAvailable,
			MinimumPerson:  s.MinimumPerson,
		}
	}
	return result
}
