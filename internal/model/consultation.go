package model

import (
	"fmt"
	"strings"
	"time"
)

// ConsultationLayout is the wire format for consultation slots.
const ConsultationLayout = "2006-01-02 15:04"

// Consultation is a scheduled consultation slot.
type Consultation struct {
	At time.Time
}

// ParseConsultation parses a consultation slot in "YYYY-MM-DD HH:MM" form.
func ParseConsultation(s string) (Consultation, error) {
	at, err := time.Parse(ConsultationLayout, strings.TrimSpace(s))
	if err != nil {
		return Consultation{}, fmt.Errorf("consultations should be of the form YYYY-MM-DD HH:MM, e.g. 2026-03-14 15:00")
	}
	return Consultation{At: at}, nil
}

func (c Consultation) String() string {
	return c.At.Format(ConsultationLayout)
}
