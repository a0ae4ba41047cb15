package apiclient

import (
	"context"
	"net/http"

	"github.com/hospitrack/ncs-console/internal/model"
)

// fetchList GETs a collection endpoint and decodes the record array.
func fetchList[T any](ctx context.Context, c *Client, endpoint string) ([]T, error) {
	var out []T
	if err := c.do(ctx, http.MethodGet, endpoint, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) FetchHospitals(ctx context.Context) ([]model.Hospital, error) {
	return fetchList[model.Hospital](ctx, c, "hospitals/")
}

func (c *Client) FetchBuildings(ctx context.Context) ([]model.Building, error) {
	return fetchList[model.Building](ctx, c, "buildings/")
}

func (c *Client) FetchFloors(ctx context.Context) ([]model.Floor, error) {
	return fetchList[model.Floor](ctx, c, "floors/")
}

func (c *Client) FetchWards(ctx context.Context) ([]model.Ward, error) {
	return fetchList[model.Ward](ctx, c, "wards/")
}

func (c *Client) FetchBeds(ctx context.Context) ([]model.Bed, error) {
	return fetchList[model.Bed](ctx, c, "beds/")
}

func (c *Client) FetchDevices(ctx context.Context) ([]model.Device, error) {
	return fetchList[model.Device](ctx, c, "devices/")
}

func (c *Client) FetchStaffTeams(ctx context.Context) ([]model.StaffTeam, error) {
	return fetchList[model.StaffTeam](ctx, c, "staff-teams/")
}

func (c *Client) FetchNurses(ctx context.Context) ([]model.Nurse, error) {
	return fetchList[model.Nurse](ctx, c, "nurses/")
}

func (c *Client) FetchTeamAssignments(ctx context.Context) ([]model.TeamAssignment, error) {
	return fetchList[model.TeamAssignment](ctx, c, "team-assignments/")
}

func (c *Client) FetchCalls(ctx context.Context) ([]model.Call, error) {
	return fetchList[model.Call](ctx, c, "calls/")
}

func (c *Client) FetchPatients(ctx context.Context) ([]model.Patient, error) {
	return fetchList[model.Patient](ctx, c, "patients/")
}

func (c *Client) FetchUsers(ctx context.Context) ([]model.User, error) {
	return fetchList[model.User](ctx, c, "users/")
}

// FetchCurrentUser resolves the identity behind the stored credential.
func (c *Client) FetchCurrentUser(ctx context.Context) (*model.User, error) {
	var user model.User
	if err := c.do(ctx, http.MethodGet, "users/me/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
