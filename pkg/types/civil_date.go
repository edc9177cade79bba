package types

import (
	"errors"
	"fmt"
	"time"
)

// dateLayout канонический формат гражданской даты (YYYY-MM-DD)
const dateLayout = "2006-01-02"

// ErrInvalidCivilDate возвращается при некорректном формате даты
var ErrInvalidCivilDate = errors.New("invalid civil date format")

// CivilDate календарная дата без времени в виде строки "YYYY-MM-DD"
//
// Бронирования приходят из внешнего хранилища с полноценными timestamp'ами
// в разных часовых поясах. Все сравнения дат в движке делаются только через
// CivilDateIn с единым бизнес-таймзоном — несогласованная нормализация дат
// была источником расхождений в подсчёте бронирований
type CivilDate string

// NewCivilDateFromString создает CivilDate из строки с валидацией формата
func NewCivilDateFromString(s string) (CivilDate, error) {
	if _, err := time.Parse(dateLayout, s); err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidCivilDate, s)
	}
	return CivilDate(s), nil
}

// CivilDateIn нормализует момент времени к гражданской дате в указанном часовом поясе
func CivilDateIn(t time.Time, loc *time.Location) CivilDate {
	return CivilDate(t.In(loc).Format(dateLayout))
}

// String возвращает строковое представление
func (d CivilDate) String() string {
	return string(d)
}

// IsZero возвращает true, если дата не задана
func (d CivilDate) IsZero() bool {
	return d == ""
}

// Time возвращает полночь этой даты в указанном часовом поясе
func (d CivilDate) Time(loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, string(d), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidCivilDate, string(d))
	}
	return t, nil
}
