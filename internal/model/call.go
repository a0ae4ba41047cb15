package model

import (
	"time"

	"github.com/google/uuid"
)

// Call status values as stored by the upstream service.
const (
	CallStatusPending   = "pending"
	CallStatusAnswered  = "answered"
	CallStatusCancelled = "cancelled"
)

// Call is a nurse call raised from a bed device. ResponseTime and Nurse
// stay null until the call is answered.
type Call struct {
	ID           uuid.UUID  `json:"id"`
	Device       uuid.UUID  `json:"device"`
	Bed          uuid.UUID  `json:"bed"`
	CallTime     time.Time  `json:"call_time"`
	Status       string     `json:"status"`
	ResponseTime *time.Time `json:"response_time"`
	Nurse        *uuid.UUID `json:"nurse"`
}
