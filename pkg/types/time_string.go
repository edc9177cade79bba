package types

import (
	"errors"
	"fmt"
	"time"
)

// timeLayout формат времени слота (HH:MM, 24 часа)
const timeLayout = "15:04"

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время начала слота в виде строки "HH:MM"
// Используется вместо time.Time, потому что слот привязан к гражданской дате,
// а не к конкретному моменту времени
type TimeString string

// NewTimeString создает TimeString из time.Time (берёт только часы и минуты)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что строка соответствует формату HH:MM
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	tt, err1 := time.Parse(timeLayout, string(t))
	ot, err2 := time.Parse(timeLayout, string(other))
	if err1 != nil || err2 != nil {
		return false
	}
	return tt.Before(ot)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	tt, err1 := time.Parse(timeLayout, string(t))
	ot, err2 := time.Parse(timeLayout, string(other))
	if err1 != nil || err2 != nil {
		return false
	}
	return tt.After(ot)
}

// AddMinutes возвращает время через minutes минут (в пределах одних суток)
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	tt, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return TimeString(tt.Add(time.Duration(minutes) * time.Minute).Format(timeLayout)), nil
}
