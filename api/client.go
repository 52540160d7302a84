package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/Sproutly/SPROUT-MOBILE/session"
	"github.com/Sproutly/SPROUT-MOBILE/shared"

	"github.com/pkg/errors"
)

var (
	ErrSessionExpired  = errors.New("session expired")
	ErrNonJSONResponse = errors.New("server returned a non-JSON response")
)

// Error is a server-reported failure with the most specific message the
// error envelope carried.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return e.Message
}

// Client is the single point of contact between the app and the backend.
type Client interface {
	Login(ctx context.Context, phone, password string) (LoginResult, error)
	ChangePassword(ctx context.Context, newPassword string) error
	ChangePasswordStaff(ctx context.Context, oldPassword, newPassword string) error

	Children(ctx context.Context) ([]ChildTransport, error)
	Attendance(ctx context.Context, childId string, days int) ([]AttendanceTransport, error)
	TodayAttendance(ctx context.Context, childId string) (*AttendanceTransport, error)
	DailyUpdates(ctx context.Context, childId string, limit int) ([]DailyUpdateTransport, error)
	StudentFees(ctx context.Context, childId string) (FeeSummaryTransport, error)
	Announcements(ctx context.Context) ([]AnnouncementTransport, error)
	Events(ctx context.Context) ([]EventTransport, error)
	BusLocation(ctx context.Context, childId string) (BusLocationTransport, error)
	LiveBusLocation(ctx context.Context, busId string) (BusLocationTransport, error)

	TeacherDashboard(ctx context.Context) (TeacherDashboardTransport, error)
	TeacherStudents(ctx context.Context) ([]StudentTransport, error)
	MarkAttendanceBulk(ctx context.Context, records []AttendanceMarkTransport) error
	PostActivity(ctx context.Context, post ActivityPostTransport) (DailyUpdateTransport, error)
	UploadMedia(ctx context.Context, encodedImage string) (string, error)
	TodayAttendanceAll(ctx context.Context) ([]AttendanceTransport, error)
	StudentAttendanceHistory(ctx context.Context, studentId string, days int) ([]AttendanceTransport, error)
	OrganizationHolidays(ctx context.Context) ([]EventTransport, error)

	DriverDashboard(ctx context.Context) (DriverDashboardTransport, error)
	UpdateBusLocation(ctx context.Context, ping LocationPingTransport) error
	StartTrip(ctx context.Context, routeId string) (TripTransport, error)
	EndTrip(ctx context.Context, tripId string) error
	ActiveTrip(ctx context.Context) (*TripTransport, error)
	UpdateStudentTripStatus(ctx context.Context, tripId, studentId, status string) error
}

type DefaultClient struct {
	Config  *shared.AppConfig    `inject:""`
	Session session.Store        `inject:""`
	Guard   *session.LogoutGuard `inject:""`
	Logger  *shared.Logger       `inject:""`
	Clock   shared.Clock         `inject:""`

	// OnSessionExpired runs exactly once per logout single-flight, after the
	// tokens have been cleared.
	OnSessionExpired func()

	HttpClient *http.Client
}

// BuildEndpointPath joins the api prefix and a relative endpoint, collapsing
// the prefix when a caller already included it. Every request goes through
// this one builder.
func BuildEndpointPath(prefix, endpoint string) string {
	prefix = "/" + strings.Trim(prefix, "/")
	if !strings.HasPrefix(endpoint, "/") {
		endpoint = "/" + endpoint
	}
	if prefix == "/" {
		return endpoint
	}
	if endpoint == prefix || strings.HasPrefix(endpoint, prefix+"/") {
		endpoint = strings.TrimPrefix(endpoint, prefix)
	}
	return prefix + endpoint
}

func (c *DefaultClient) endpointURL(endpoint string) string {
	base := strings.TrimRight(c.Config.ApiBaseUrl, "/")
	return base + BuildEndpointPath(c.Config.ApiPathPrefix, endpoint)
}

func (c *DefaultClient) httpClient() *http.Client {
	if c.HttpClient != nil {
		return c.HttpClient
	}
	return http.DefaultClient
}

func (c *DefaultClient) get(ctx context.Context, endpoint string, out interface{}) error {
	return c.fetch(ctx, http.MethodGet, endpoint, nil, out)
}

func (c *DefaultClient) post(ctx context.Context, endpoint string, payload, out interface{}) error {
	return c.fetch(ctx, http.MethodPost, endpoint, payload, out)
}

// fetch is the authenticated request path: bearer attachment, single-flight
// 401 handling, error-envelope parsing and data-envelope unwrapping.
func (c *DefaultClient) fetch(ctx context.Context, method, endpoint string, payload, out interface{}) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return errors.Wrap(err, "failed to json encode the request payload")
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, c.endpointURL(endpoint), body)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	if token := c.Session.AccessToken(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	} else {
		// The server is the final authority on rejecting unauthenticated calls.
		c.Logger.Warn(ctx, "no access token available, request goes out unauthenticated", "endpoint", endpoint)
	}

	resp, err := c.httpClient().Do(req.WithContext(ctx))
	if err != nil {
		return errors.Wrap(err, "failed to execute the http request")
	}
	defer resp.Body.Close()

	b, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(err, "failed to read response body")
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return c.expireSession(ctx, endpoint)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return serverError(resp.StatusCode, resp.Status, b)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(unwrapEnvelope(b), out); err != nil {
		return errors.Wrap(err, "failed to decode json response")
	}
	return nil
}

// expireSession clears the session once per debounce window. The owning
// caller gets ErrSessionExpired; everyone else gets an empty result and no
// error, so a burst of concurrent 401s never triggers an alert storm.
func (c *DefaultClient) expireSession(ctx context.Context, endpoint string) error {
	if !c.Guard.Begin() {
		c.Logger.Debug(ctx, "session expiry already being handled, swallowing 401", "endpoint", endpoint)
		return nil
	}

	if err := c.Session.Clear(); err != nil {
		c.Logger.Err(ctx, "failed to clear session after 401", "err", err.Error())
	}
	if c.OnSessionExpired != nil {
		c.OnSessionExpired()
	}
	return ErrSessionExpired
}

type envelope struct {
	Data json.RawMessage `json:"data"`
}

// unwrapEnvelope unwraps the versioned {data: ...} convention and passes
// legacy bare payloads through unchanged. Deliberate backward-compatibility
// shim: the same backend serves both shapes.
func unwrapEnvelope(body []byte) []byte {
	env := envelope{}
	if err := json.Unmarshal(body, &env); err == nil && len(env.Data) > 0 && string(env.Data) != "null" {
		return env.Data
	}
	return body
}

func serverError(statusCode int, status string, body []byte) error {
	parsed := struct {
		Error   json.RawMessage `json:"error"`
		Message string          `json:"message"`
	}{}

	message := ""
	// The error body is parsed defensively: any unexpected shape falls
	// through to the generic message.
	if err := json.Unmarshal(body, &parsed); err == nil {
		if len(parsed.Error) > 0 {
			var asString string
			nested := struct {
				Message string `json:"message"`
			}{}
			if err := json.Unmarshal(parsed.Error, &asString); err == nil {
				message = asString
			} else if err := json.Unmarshal(parsed.Error, &nested); err == nil {
				message = nested.Message
			}
		}
		if message == "" {
			message = parsed.Message
		}
	}
	if message == "" {
		message = fmt.Sprintf("API error: %s", status)
	}

	return &Error{StatusCode: statusCode, Message: message}
}
