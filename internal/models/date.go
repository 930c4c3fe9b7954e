package models

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Date is a calendar date that serializes as "YYYY-MM-DD" in JSON and maps
// to a SQL date column. Daily logs are keyed on it together with the user.
type Date struct{ time.Time }

// Today returns the current date in UTC, truncated to midnight.
func Today() Date {
	return NewDate(time.Now().UTC())
}

// NewDate truncates t to midnight UTC.
func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Time.Format("2006-01-02") + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	t, err := time.Parse(`"2006-01-02"`, string(b))
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}

func (d *Date) Scan(v interface{}) error {
	switch t := v.(type) {
	case time.Time:
		*d = NewDate(t.UTC())
		return nil
	case string:
		s := t
		if len(s) > 10 {
			s = s[:10] // strip any time component
		}
		parsed, err := time.Parse("2006-01-02", s)
		if err != nil {
			return err
		}
		d.Time = parsed
		return nil
	case []byte:
		return d.Scan(string(t))
	case nil:
		d.Time = time.Time{}
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", v)
	}
}

// GormDataType tells gorm to create a date column for this type.
func (Date) GormDataType() string {
	return "date"
}
