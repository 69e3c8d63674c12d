package dto

import (
	"fmt"
	"strings"
	"time"
)

// Date is a calendar day carried as "YYYY-MM-DD" in JSON. Full RFC3339
// timestamps are also accepted on input; the time part is dropped by the
// DATE column anyway.
type Date struct {
	time.Time
}

// UnmarshalJSON implements json.Unmarshaler
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", s)
		}
	}
	d.Time = t
	return nil
}

// MarshalJSON implements json.Marshaler
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format("2006-01-02") + `"`), nil
}

// TimeValue returns the underlying time of an optional date
func (d *Date) TimeValue() *time.Time {
	if d == nil {
		return nil
	}
	t := d.Time
	return &t
}

// CreateInternshipRequest represents a company posting a new internship
type CreateInternshipRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  *string `json:"description,omitempty"`
	Requirements *string `json:"requirements,omitempty"`
	Location     *string `json:"location,omitempty"`
	Type         *string `json:"type,omitempty"`
	Duration     *string `json:"duration,omitempty"`
	IsRemote     bool    `json:"is_remote"`
	Deadline     *Date   `json:"deadline,omitempty"`
}

// UpdateInternshipRequest represents a full edit of an existing internship
type UpdateInternshipRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  *string `json:"description,omitempty"`
	Requirements *string `json:"requirements,omitempty"`
	Location     *string `json:"location,omitempty"`
	Type         *string `json:"type,omitempty"`
	Duration     *string `json:"duration,omitempty"`
	IsRemote     bool    `json:"is_remote"`
	Deadline     *Date   `json:"deadline,omitempty"`
}

// UpdateInternshipStatusRequest changes the status column of an internship
type UpdateInternshipStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}
