package model

import (
	"github.com/google/uuid"
)

// Hospital is the top of the facility hierarchy. Admin is optional.
type Hospital struct {
	ID      uuid.UUID  `json:"id"`
	Name    string     `json:"name"`
	Address string     `json:"address"`
	Admin   *uuid.UUID `json:"admin"`
}

type Building struct {
	ID              uuid.UUID  `json:"id"`
	Name            string     `json:"name"`
	Hospital        uuid.UUID  `json:"hospital"`
	BuildingManager *uuid.UUID `json:"building_manager"`
}

type Floor struct {
	ID           uuid.UUID  `json:"id"`
	Number       int        `json:"number"`
	Building     uuid.UUID  `json:"building"`
	FloorManager *uuid.UUID `json:"floor_manager"`
}

type Ward struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Floor uuid.UUID `json:"floor"`
}

// Bed carries the nurses assigned to it as a list of Nurse IDs.
type Bed struct {
	ID     uuid.UUID   `json:"id"`
	Number string      `json:"number"`
	Ward   uuid.UUID   `json:"ward"`
	Nurses []uuid.UUID `json:"nurses"`
}

// Device is a calling device attached to a bed.
type Device struct {
	ID           uuid.UUID `json:"id"`
	SerialNumber string    `json:"serial_number"`
	Bed          uuid.UUID `json:"bed"`
}
