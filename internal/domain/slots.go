package domain

import (
	"sort"
	"time"

	"github.com/kritsadaK/TTB-BookingService/pkg/types"
)

// BuildDaySlots собирает слоты пакета на конкретную гражданскую дату.
//
// Сюда стекаются все три части движка: вместимость из EffectiveCapacity,
// занятость из бронирований и внешние переключатели доступности. Функция
// чистая — одинаковые входы всегда дают одинаковый результат.
//
// Правила:
//  1. Дата каждого бронирования нормализуется к date в бизнес-таймзоне loc;
//     не совпавшие по дате или по пакету бронирования отбрасываются.
//  2. Занятость слота = Σ OccupancyUnits по его бронированиям.
//  3. Времена из расписания пакета без бронирований попадают в выдачу
//     с нулевой занятостью; доступность и минимум берутся из overrides.
//  4. Выдача отсортирована по времени, дубликатов времён не бывает.
//
// Пустое расписание без бронирований даёт пустой срез
func BuildDaySlots(
	pkg *Package,
	vehicles VehicleRegistry,
	bookings []*Booking,
	overrides []SlotOverride,
	date types.CivilDate,
	loc *time.Location,
) []Slot {
	if pkg == nil {
		return []Slot{}
	}

	capacity := EffectiveCapacity(pkg, vehicles)

	// Занятость по временам
	occupancy := make(map[types.TimeString]int)
	for _, b := range bookings {
		if b == nil || b.PackageID != pkg.ID {
			continue
		}
		if b.Time.IsZero() {
			continue
		}
		if b.CivilDateIn(loc) != date {
			continue
		}
		occupancy[b.Time] += b.OccupancyUnits()
	}

	overrideByTime := make(map[types.TimeString]SlotOverride, len(overrides))
	for _, o := range overrides {
		overrideByTime[o.Time] = o
	}

	// Объединяем расписание пакета и фактически забронированные времена
	times := make(map[types.TimeString]struct{}, len(pkg.Times)+len(occupancy))
	for _, t := range pkg.Times {
		if !t.IsZero() {
			times[t] = struct{}{}
		}
	}
	for t := range occupancy {
		times[t] = struct{}{}
	}

	slots := make([]Slot, 0, len(times))
	for t := range times {
		slot := Slot{
			PackageID:     pkg.ID,
			Date:          date,
			Time:          t,
			Capacity:      capacity,
			BookedCount:   occupancy[t],
			IsAvailable:   true,
			MinimumPerson: pkg.EffectiveMinimum(),
		}

		if o, ok := overrideByTime[t]; ok {
			if o.IsAvailable != nil {
				slot.IsAvailable = *o.IsAvailable
			}
			if o.MinimumPerson != nil && *o.MinimumPerson >= 1 {
				slot.MinimumPerson = *o.MinimumPerson
			}
		}

		slots = append(slots, slot)
	}

	sort.Slice(slots, func(i, j int) bool {
		// HH:MM с ведущими нулями сортируется лексикографически
		return slots[i].Time < slots[j].Time
	})

	return slots
}

// FindSlot возвращает слот с указанным временем из выдачи BuildDaySlots
func FindSlot(slots []Slot, t types.TimeString) (Slot, bool) {
	for _, s := range slots {
		if s.Time == t {
			return s, true
		}
	}
	return Slot{}, false
}
