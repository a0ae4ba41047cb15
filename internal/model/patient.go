package model

import (
	"github.com/google/uuid"
)

// Patient is a patient record; Bed is null while unassigned.
type Patient struct {
	ID     uuid.UUID  `json:"id"`
	Name   string     `json:"name"`
	Age    int        `json:"age"`
	Gender string     `json:"gender"`
	Bed    *uuid.UUID `json:"bed"`
}
