package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

// TimeString время суток в формате "HH:MM"
type TimeString string

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute()))
}

// NewTimeStringFromString парсит строку времени
// Допустимые форматы: "9:00", "09:00", "09:00:00" (формат TIME из Postgres)
func NewTimeStringFromString(s string) (TimeString, error) {
	minutes, err := parseMinutes(strings.TrimSpace(s))
	if err != nil {
		return "", err
	}
	return fromMinutes(minutes), nil
}

// MustTimeString как NewTimeStringFromString, но паникует при ошибке (для констант и тестов)
func MustTimeString(s string) TimeString {
	t, err := NewTimeStringFromString(s)
	if err != nil {
		panic(err)
	}
	return t
}

// String возвращает строковое представление
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true, если время не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение в каноническом формате "HH:MM"
func (t TimeString) Validate() error {
	minutes, err := parseMinutes(string(t))
	if err != nil {
		return err
	}
	if fromMinutes(minutes) != t {
		return fmt.Errorf("%w: %q is not in HH:MM form", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Minutes возвращает количество минут от полуночи
// Для некорректного значения возвращает -1
func (t TimeString) Minutes() int {
	minutes, err := parseMinutes(string(t))
	if err != nil {
		return -1
	}
	return minutes
}

// Compare сравнивает два времени: -1, 0 или 1
func (t TimeString) Compare(other TimeString) int {
	a, b := t.Minutes(), other.Minutes()
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return t.Compare(other) < 0
}

// Value реализует driver.Valuer
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan реализует sql.Scanner
// Postgres возвращает TIME как "HH:MM:SS", varchar - как есть
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON сериализует время как строку "HH:MM"
func (t TimeString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

// UnmarshalJSON разбирает строку времени с нормализацией
func (t *TimeString) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTimeString, err)
	}
	if s == "" {
		*t = ""
		return nil
	}
	return t.scanString(s)
}

// SortTimes сортирует слайс времени по возрастанию (на месте)
func SortTimes(times []TimeString) {
	sort.Slice(times, func(i, j int) bool {
		return times[i].IsBefore(times[j])
	})
}

// UniqueSorted возвращает новый отсортированный слайс без дубликатов
func UniqueSorted(times []TimeString) []TimeString {
	result := make([]TimeString, 0, len(times))
	seen := make(map[TimeString]struct{}, len(times))
	for _, t := range times {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	SortTimes(result)
	return result
}

// ParseTimeStrings парсит список строк, возвращая первую ошибку
func ParseTimeStrings(values []string) ([]TimeString, error) {
	result := make([]TimeString, 0, len(values))
	for _, v := range values {
		t, err := NewTimeStringFromString(v)
		if err != nil {
			return nil, err
		}
		result = append(result, t)
	}
	return result, nil
}

// StringsOf конвертирует слайс TimeString в []string (для pq.Array и JSON)
func StringsOf(times []TimeString) []string {
	result := make([]string, len(times))
	for i, t := range times {
		result[i] = t.String()
	}
	return result
}

func parseMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	if len(parts[0]) == 0 || len(parts[0]) > 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	hours, err := strconv.Atoi(parts[0])
	if err != nil || hours < 0 || hours > 23 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	minutes, err := strconv.Atoi(parts[1])
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}

	if len(parts) == 3 {
		// Секунды допускаются только из БД и отбрасываются
		if _, err := strconv.Atoi(strings.SplitN(parts[2], ".", 2)[0]); err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
		}
	}

	return hours*60 + minutes, nil
}

func fromMinutes(minutes int) TimeString {
	return TimeString(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
}
