package api

import (
	"context"

	"github.com/pkg/errors"
)

func (c *DefaultClient) DriverDashboard(ctx context.Context) (DriverDashboardTransport, error) {
	dashboard := DriverDashboardTransport{}
	if err := c.get(ctx, "/driver/dashboard", &dashboard); err != nil {
		return DriverDashboardTransport{}, errors.Wrap(err, "failed to get driver dashboard")
	}
	return dashboard, nil
}

// UpdateBusLocation is the periodic GPS ping pushed while a trip is running.
func (c *DefaultClient) UpdateBusLocation(ctx context.Context, ping LocationPingTransport) error {
	if err := c.post(ctx, "/driver/location", ping, nil); err != nil {
		return errors.Wrap(err, "failed to update bus location")
	}
	return nil
}

func (c *DefaultClient) StartTrip(ctx context.Context, routeId string) (TripTransport, error) {
	trip := TripTransport{}
	payload := map[string]string{"routeId": routeId}
	if err := c.post(ctx, "/driver/trip/start", payload, &trip); err != nil {
		return TripTransport{}, errors.Wrap(err, "failed to start trip")
	}
	return trip, nil
}

func (c *DefaultClient) EndTrip(ctx context.Context, tripId string) error {
	payload := map[string]string{"tripId": tripId}
	if err := c.post(ctx, "/driver/trip/end", payload, nil); err != nil {
		return errors.Wrap(err, "failed to end trip")
	}
	return nil
}

func (c *DefaultClient) ActiveTrip(ctx context.Context) (*TripTransport, error) {
	trip := TripTransport{}
	if err := c.get(ctx, "/driver/trip/active", &trip); err != nil {
		return nil, errors.Wrap(err, "failed to get active trip")
	}
	if trip.Id == "" {
		return nil, nil
	}
	return &trip, nil
}

// UpdateStudentTripStatus moves one student through the boarding/drop state
// machine for the given trip.
func (c *DefaultClient) UpdateStudentTripStatus(ctx context.Context, tripId, studentId, status string) error {
	payload := map[string]string{"status": status}
	endpoint := "/driver/trip/" + tripId + "/student/" + studentId + "/status"
	if err := c.post(ctx, endpoint, payload, nil); err != nil {
		return errors.Wrap(err, "failed to update student trip status")
	}
	return nil
}
