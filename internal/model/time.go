// internal/model/time.go
package model

import "time"

const (
	timestampLayout = "2006-01-02T15:04:05"
	dateLayout      = "2006-01-02"
)

// Timestamp is a second-precision UTC timestamp that serializes as ISO-8601
// without a zone designator.
type Timestamp struct {
	time.Time
}

// NewTimestamp truncates t to whole seconds in UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{t.UTC().Truncate(time.Second)}
}

// MarshalCSV implements the gocsv marshaller.
func (t Timestamp) MarshalCSV() (string, error) {
	return t.Format(timestampLayout), nil
}

// UnmarshalCSV implements the gocsv unmarshaller.
func (t *Timestamp) UnmarshalCSV(value string) error {
	parsed, err := time.Parse(timestampLayout, value)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// Date is a day-precision value that serializes as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate truncates t to its UTC calendar day.
func NewDate(t time.Time) Date {
	u := t.UTC()
	return Date{time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)}
}

// MarshalCSV implements the gocsv marshaller.
func (d Date) MarshalCSV() (string, error) {
	return d.Format(dateLayout), nil
}

// UnmarshalCSV implements the gocsv unmarshaller.
func (d *Date) UnmarshalCSV(value string) error {
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		return err
	}
	d.Time = parsed
	return nil
}
