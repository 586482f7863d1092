package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// ErrMalformedClockTime is returned when a time-of-day value cannot be parsed
var ErrMalformedClockTime = errors.New("malformed time value, expected HH:MM:SS")

// ClockTime is a time-of-day value used as an offset into a video.
// It is stored in a TIME column and travels over JSON as "HH:MM:SS".
type ClockTime struct {
	Hour   int `json:"hour"`
	Minute int `json:"minute"`
	Second int `json:"second"`
}

// NewClockTime builds a ClockTime from its parts
func NewClockTime(hour, minute, second int) ClockTime {
	return ClockTime{Hour: hour, Minute: minute, Second: second}
}

// ParseClockTime parses "HH:MM:SS". Fractional seconds are truncated.
func ParseClockTime(value string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 3 {
		return ClockTime{}, fmt.Errorf("%w: %q", ErrMalformedClockTime, value)
	}

	secondPart := parts[2]
	if dot := strings.IndexByte(secondPart, '.'); dot >= 0 {
		secondPart = secondPart[:dot]
	}

	var nums [3]int
	for i, p := range []string{parts[0], parts[1], secondPart} {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return ClockTime{}, fmt.Errorf("%w: %q", ErrMalformedClockTime, value)
		}
		nums[i] = n
	}

	t := ClockTime{Hour: nums[0], Minute: nums[1], Second: nums[2]}
	if err := t.validate(); err != nil {
		return ClockTime{}, fmt.Errorf("%w: %q", err, value)
	}
	return t, nil
}

func (t ClockTime) validate() error {
	if t.Hour < 0 || t.Hour > 23 || t.Minute < 0 || t.Minute > 59 || t.Second < 0 || t.Second > 59 {
		return ErrMalformedClockTime
	}
	return nil
}

// Seconds returns the offset in whole seconds
func (t ClockTime) Seconds() int {
	return t.Hour*3600 + t.Minute*60 + t.Second
}

// String formats the value as HH:MM:SS
func (t ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// MarshalJSON implements json.Marshaler
func (t ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts either "HH:MM:SS" or {"hour":..,"minute":..,"second":..}
func (t *ClockTime) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		parsed, err := ParseClockTime(s)
		if err != nil {
			return err
		}
		*t = parsed
		return nil
	}

	type structured ClockTime
	var st structured
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("%w: %s", ErrMalformedClockTime, string(data))
	}
	parsed := ClockTime(st)
	if err := parsed.validate(); err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Scan implements sql.Scanner
func (t *ClockTime) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*t = ClockTime{}
		return nil
	case time.Time:
		*t = ClockTime{Hour: v.Hour(), Minute: v.Minute(), Second: v.Second()}
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	default:
		return fmt.Errorf("%w: unsupported type %T", ErrMalformedClockTime, value)
	}
}

func (t *ClockTime) scanString(s string) error {
	// some drivers hand TIME columns back as a full timestamp
	if len(s) > 8 && strings.ContainsAny(s, "T ") && strings.Count(s, "-") >= 2 {
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02 15:04:05", "2006-01-02T15:04:05"} {
			if ts, err := time.Parse(layout, s); err == nil {
				*t = ClockTime{Hour: ts.Hour(), Minute: ts.Minute(), Second: ts.Second()}
				return nil
			}
		}
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer
func (t ClockTime) Value() (driver.Value, error) {
	return t.String(), nil
}

// GormDBDataType keeps the column a TIME on every dialect
func (ClockTime) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return "time"
}
