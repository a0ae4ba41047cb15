package console

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/hospitrack/ncs-console/internal/apiclient"
	"github.com/hospitrack/ncs-console/internal/session"
)

// Dashboard is the landing screen: it guards on session presence,
// links every resource collection, and owns logout.
type Dashboard struct {
	client *apiclient.Client
	store  session.Store
	logger zerolog.Logger
}

func NewDashboard(client *apiclient.Client, store session.Store, logger zerolog.Logger) *Dashboard {
	return &Dashboard{client: client, store: store, logger: logger}
}

// Guard is the mount-time check: with no stored credential the caller
// is sent to login before anything is fetched.
func (d *Dashboard) Guard() *Navigation {
	if d.store.Credential() == nil {
		return &Navigation{Path: loginPath}
	}
	return nil
}

// Logout clears the session and routes to login.
func (d *Dashboard) Logout() Navigation {
	d.client.Logout()
	return Navigation{Path: loginPath}
}

// SessionExpired handles a failed fetch: a 401 means the credential no
// longer works, so the session is cleared and the caller is sent to
// login. Any other error stays on the dashboard for the user to retry.
func (d *Dashboard) SessionExpired(err error) *Navigation {
	if !apiclient.IsUnauthorized(err) {
		return nil
	}
	d.logger.Info().Msg("credential rejected, clearing session")
	d.store.Clear()
	return &Navigation{Path: loginPath}
}

// ResourceCount is one dashboard card: a collection and how many
// records it currently holds.
type ResourceCount struct {
	Name  string
	Count int
}

// Summary fetches every collection the dashboard links and reports the
// record counts. The first failure aborts; an expired session
// additionally yields the login redirect.
func (d *Dashboard) Summary(ctx context.Context) ([]ResourceCount, *Navigation, error) {
	counters := []struct {
		name  string
		count func() (int, error)
	}{
		{"hospitals", countOf(ctx, d.client.FetchHospitals)},
		{"buildings", countOf(ctx, d.client.FetchBuildings)},
		{"floors", countOf(ctx, d.client.FetchFloors)},
		{"wards", countOf(ctx, d.client.FetchWards)},
		{"beds", countOf(ctx, d.client.FetchBeds)},
		{"devices", countOf(ctx, d.client.FetchDevices)},
		{"staff-teams", countOf(ctx, d.client.FetchStaffTeams)},
		{"nurses", countOf(ctx, d.client.FetchNurses)},
		{"team-assignments", countOf(ctx, d.client.FetchTeamAssignments)},
		{"calls", countOf(ctx, d.client.FetchCalls)},
		{"patients", countOf(ctx, d.client.FetchPatients)},
		{"users", countOf(ctx, d.client.FetchUsers)},
	}

	out := make([]ResourceCount, 0, len(counters))
	for _, c := range counters {
		n, err := c.count()
		if err != nil {
			return nil, d.SessionExpired(err), err
		}
		out = append(out, ResourceCount{Name: c.name, Count: n})
	}
	return out, nil, nil
}

func countOf[T any](ctx context.Context, fetch func(context.Context) ([]T, error)) func() (int, error) {
	return func() (int, error) {
		records, err := fetch(ctx)
		if err != nil {
			return 0, err
		}
		return len(records), nil
	}
}
