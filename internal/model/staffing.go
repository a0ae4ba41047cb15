package model

import (
	"github.com/google/uuid"
)

type StaffTeam struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Nurse links a staff member to a team. NurseID is the badge number,
// distinct from the record's UUID.
type Nurse struct {
	ID      uuid.UUID `json:"id"`
	Team    uuid.UUID `json:"team"`
	NurseID string    `json:"nurse_id"`
	Name    string    `json:"name"`
}

// TeamAssignment binds a staff team to a ward on a floor.
type TeamAssignment struct {
	ID    uuid.UUID `json:"id"`
	Ward  uuid.UUID `json:"ward"`
	Floor uuid.UUID `json:"floor"`
	Team  uuid.UUID `json:"team"`
}
