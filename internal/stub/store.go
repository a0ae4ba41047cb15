package stub

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/hospitrack/ncs-console/internal/model"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
)

const bcryptCost = 10

// userRecord is a user plus what the wire never carries.
type userRecord struct {
	model.User
	PasswordHash string
}

// Store is the in-memory dataset behind the stub. It stands in for
// the real service's database, so everything it hands out is a copy.
type Store struct {
	mu    sync.RWMutex
	users map[string]*userRecord // keyed by username

	hospitals   []model.Hospital
	buildings   []model.Building
	floors      []model.Floor
	wards       []model.Ward
	beds        []model.Bed
	devices     []model.Device
	staffTeams  []model.StaffTeam
	nurses      []model.Nurse
	assignments []model.TeamAssignment
	calls       []model.Call
	patients    []model.Patient
}

// NewStore builds a store seeded with a small but fully linked
// facility: one hospital down to beds and devices, a staff team with
// nurses on shift, an open call and a couple of patients.
func NewStore() *Store {
	s := &Store{users: make(map[string]*userRecord)}
	s.seed()
	return s
}

// Authenticate checks username/password and returns the user.
func (s *Store) Authenticate(username, password string) (*model.User, error) {
	s.mu.RLock()
	rec, ok := s.users[username]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	u := rec.User
	return &u, nil
}

// CreateUser registers a new account.
func (s *Store) CreateUser(username, email, password, role string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[username]; ok {
		return nil, ErrUserExists
	}

	rec := &userRecord{
		User: model.User{
			ID:       uuid.New(),
			Username: username,
			Email:    email,
			Role:     role,
		},
		PasswordHash: string(hash),
	}
	s.users[username] = rec

	u := rec.User
	return &u, nil
}

// UserByName returns the user behind a username.
func (s *Store) UserByName(username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.users[username]
	if !ok {
		return nil, ErrUserNotFound
	}
	u := rec.User
	return &u, nil
}

// UserByEmail returns the user behind an email address.
func (s *Store) UserByEmail(email string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, rec := range s.users {
		if rec.Email == email {
			u := rec.User
			return &u, nil
		}
	}
	return nil, ErrUserNotFound
}

// CheckPassword verifies a user's current password.
func (s *Store) CheckPassword(username, password string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.users[username]
	if !ok {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(rec.PasswordHash), []byte(password)) == nil
}

// SetPassword replaces a user's password.
func (s *Store) SetPassword(username, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.users[username]
	if !ok {
		return ErrUserNotFound
	}
	rec.PasswordHash = string(hash)
	return nil
}

func (s *Store) Users() []model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]model.User, 0, len(s.users))
	for _, rec := range s.users {
		out = append(out, rec.User)
	}
	return out
}

func (s *Store) Hospitals() []model.Hospital {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Hospital(nil), s.hospitals...)
}

func (s *Store) Buildings() []model.Building {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Building(nil), s.buildings...)
}

func (s *Store) Floors() []model.Floor {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Floor(nil), s.floors...)
}

func (s *Store) Wards() []model.Ward {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Ward(nil), s.wards...)
}

func (s *Store) Beds() []model.Bed {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Bed(nil), s.beds...)
}

func (s *Store) Devices() []model.Device {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Device(nil), s.devices...)
}

func (s *Store) StaffTeams() []model.StaffTeam {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.StaffTeam(nil), s.staffTeams...)
}

func (s *Store) Nurses() []model.Nurse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Nurse(nil), s.nurses...)
}

func (s *Store) TeamAssignments() []model.TeamAssignment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.TeamAssignment(nil), s.assignments...)
}

func (s *Store) Calls() []model.Call {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Call(nil), s.calls...)
}

func (s *Store) Patients() []model.Patient {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Patient(nil), s.patients...)
}

func (s *Store) seed() {
	admin := s.mustCreate("admin", "admin@ncs.local", "Admin1234", model.RoleAdmin)
	s.mustCreate("supervisor1", "supervisor1@ncs.local", "Super1234", model.RoleSupervisor)
	s.mustCreate("nurse1", "nurse1@ncs.local", "Nurse1234", model.RoleNurse)

	hospital := model.Hospital{ID: uuid.New(), Name: "St. Camillus General", Address: "12 Harbor Road", Admin: &admin.ID}
	building := model.Building{ID: uuid.New(), Name: "Main Wing", Hospital: hospital.ID}
	floor := model.Floor{ID: uuid.New(), Number: 2, Building: building.ID}
	ward := model.Ward{ID: uuid.New(), Name: "Cardiology", Floor: floor.ID}

	team := model.StaffTeam{ID: uuid.New(), Name: "Night Shift A"}
	nurseA := model.Nurse{ID: uuid.New(), Team: team.ID, NurseID: "N-1041", Name: "Ada Okafor"}
	nurseB := model.Nurse{ID: uuid.New(), Team: team.ID, NurseID: "N-1042", Name: "Jonas Petrov"}

	bed1 := model.Bed{ID: uuid.New(), Number: "C-201", Ward: ward.ID, Nurses: []uuid.UUID{nurseA.ID}}
	bed2 := model.Bed{ID: uuid.New(), Number: "C-202", Ward: ward.ID, Nurses: []uuid.UUID{nurseA.ID, nurseB.ID}}
	device1 := model.Device{ID: uuid.New(), SerialNumber: "DEV-88231", Bed: bed1.ID}
	device2 := model.Device{ID: uuid.New(), SerialNumber: "DEV-88232", Bed: bed2.ID}

	assignment := model.TeamAssignment{ID: uuid.New(), Ward: ward.ID, Floor: floor.ID, Team: team.ID}

	answered := time.Now().Add(-40 * time.Minute)
	s.hospitals = []model.Hospital{hospital}
	s.buildings = []model.Building{building}
	s.floors = []model.Floor{floor}
	s.wards = []model.Ward{ward}
	s.beds = []model.Bed{bed1, bed2}
	s.devices = []model.Device{device1, device2}
	s.staffTeams = []model.StaffTeam{team}
	s.nurses = []model.Nurse{nurseA, nurseB}
	s.assignments = []model.TeamAssignment{assignment}
	s.calls = []model.Call{
		{ID: uuid.New(), Device: device1.ID, Bed: bed1.ID, CallTime: time.Now().Add(-5 * time.Minute), Status: model.CallStatusPending},
		{ID: uuid.New(), Device: device2.ID, Bed: bed2.ID, CallTime: time.Now().Add(-1 * time.Hour), Status: model.CallStatusAnswered, ResponseTime: &answered, Nurse: &nurseB.ID},
	}
	s.patients = []model.Patient{
		{ID: uuid.New(), Name: "Marta Keller", Age: 71, Gender: "female", Bed: &bed1.ID},
		{ID: uuid.New(), Name: "Efe Adeyemi", Age: 58, Gender: "male", Bed: &bed2.ID},
		{ID: uuid.New(), Name: "Tomas Lindgren", Age: 64, Gender: "male"},
	}
}

func (s *Store) mustCreate(username, email, password, role string) *model.User {
	u, err := s.CreateUser(username, email, password, role)
	if err != nil {
		panic(err)
	}
	return u
}
