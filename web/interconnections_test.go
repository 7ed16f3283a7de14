package web

import (
	"context"
	"errors"
	"github.com/Monte-10/ryanair-labs/business/interconnections"
	"github.com/Monte-10/ryanair-labs/common/xtime"
	"github.com/Monte-10/ryanair-labs/ryanair"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"io"
	"log"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"
)

type staticRoutes struct {
	routes []ryanair.Route
	err    error
}

func (s staticRoutes) Routes(ctx context.Context) ([]ryanair.Route, error) {
	return s.routes, s.err
}

type staticSchedules map[string]ryanair.Schedule

func (s staticSchedules) Schedule(ctx context.Context, departure, arrival string, year int, month time.Month) (ryanair.Schedule, error) {
	return s[departure+"-"+arrival], nil
}

type failingSearch struct {
	err error
}

func (f failingSearch) FindItineraries(ctx context.Context, departure, arrival string, start, end xtime.LocalDateTime) ([]interconnections.Itinerary, error) {
	return nil, f.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testSearch(routesErr error) *interconnections.Search {
	flight := func(dep, arr string) ryanair.ScheduleFlight {
		return ryanair.ScheduleFlight{CarrierCode: "FR", Number: "1", DepartureTime: dep, ArrivalTime: arr}
	}

	routes := staticRoutes{
		routes: []ryanair.Route{
			{AirportFrom: "DUB", AirportTo: "STN", Operator: interconnections.Operator},
			{AirportFrom: "STN", AirportTo: "WRO", Operator: interconnections.Operator},
			{AirportFrom: "DUB", AirportTo: "WRO", Operator: interconnections.Operator},
		},
		err: routesErr,
	}

	schedules := staticSchedules{
		"DUB-STN": {Month: 3, Days: []ryanair.ScheduleDay{{Day: 10, Flights: []ryanair.ScheduleFlight{flight("07:00", "08:00")}}}},
		"STN-WRO": {Month: 3, Days: []ryanair.ScheduleDay{{Day: 10, Flights: []ryanair.ScheduleFlight{flight("10:05", "12:55")}}}},
		"DUB-WRO": {Month: 3, Days: []ryanair.ScheduleDay{{Day: 10, Flights: []ryanair.ScheduleFlight{flight("09:30", "12:55")}}}},
	}

	return interconnections.NewSearch(routes, schedules, interconnections.WithLogger(discardLogger()))
}

func newTestEcho(search ItinerarySearch) *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	e.JSONSerializer = JSONSerializer{}
	e.Use(
		ErrorLogAndMaskMiddleware(log.New(io.Discard, "", 0)),
		NoCacheOnErrorMiddleware(),
	)

	h := NewInterconnectionsHandler(search, discardLogger())
	e.GET("/interconnections", h.JSON)
	e.GET("/interconnections/png", h.PNG)
	e.GET("/health", Health)

	return e
}

func get(e *echo.Echo, path string, q url.Values) *httptest.ResponseRecorder {
	target := path
	if q != nil {
		target += "?" + q.Encode()
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func query(dep, arr, start, end string) url.Values {
	q := make(url.Values)
	for k, v := range map[string]string{"departure": dep, "arrival": arr, "departureDateTime": start, "arrivalDateTime": end} {
		if v != "" {
			q.Set(k, v)
		}
	}

	return q
}

func TestInterconnectionsHandler_JSON(t *testing.T) {
	rec := get(newTestEcho(testSearch(nil)), "/interconnections", query("DUB", "WRO", "2025-03-10T06:00", "2025-03-10T21:00"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(HeaderSearchId))

	var body []struct {
		Id    string `json:"id"`
		Stops int    `json:"stops"`
		Legs  []struct {
			DepartureAirport  string `json:"departureAirport"`
			ArrivalAirport    string `json:"arrivalAirport"`
			DepartureDateTime string `json:"departureDateTime"`
			ArrivalDateTime   string `json:"arrivalDateTime"`
		} `json:"legs"`
	}

	if !assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body)) {
		return
	}

	if !assert.Len(t, body, 2) {
		return
	}

	assert.Equal(t, 1, body[0].Stops)
	assert.Len(t, body[0].Legs, 2)
	assert.Equal(t, "2025-03-10T07:00", body[0].Legs[0].DepartureDateTime)
	assert.Equal(t, "STN", body[0].Legs[0].ArrivalAirport)
	assert.Equal(t, "2025-03-10T12:55", body[0].Legs[1].ArrivalDateTime)

	assert.Equal(t, 0, body[1].Stops)
	assert.Len(t, body[1].Legs, 1)
	assert.Equal(t, "2025-03-10T09:30", body[1].Legs[0].DepartureDateTime)
	assert.NotEmpty(t, body[1].Id)
}

func TestInterconnectionsHandler_FractionalSeconds(t *testing.T) {
	rec := get(newTestEcho(testSearch(nil)), "/interconnections", query("DUB", "WRO", "2025-03-10T06:00:00.000", "2025-03-10T21:00:00.000"))

	assert.Equal(t, http.StatusOK, rec.Code)

	var body []struct {
		Stops int `json:"stops"`
	}

	if !assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body)) {
		return
	}

	assert.Len(t, body, 2)
}

func TestInterconnectionsHandler_BadRequest(t *testing.T) {
	cases := []struct {
		name    string
		q       url.Values
		message string
	}{
		{"missing departure", query("", "WRO", "2025-03-10T06:00", "2025-03-10T21:00"), "departure is required"},
		{"missing arrival", query("DUB", "", "2025-03-10T06:00", "2025-03-10T21:00"), "arrival is required"},
		{"blank departure", query("  ", "WRO", "2025-03-10T06:00", "2025-03-10T21:00"), "invalid argument: departure must not be empty"},
		{"missing window", query("DUB", "WRO", "", "2025-03-10T21:00"), "invalid argument: departureDateTime must be present"},
		{"inverted window", query("DUB", "WRO", "2025-03-10T21:00", "2025-03-10T06:00"), "invalid argument: departureDateTime 2025-03-10T21:00 must be before arrivalDateTime 2025-03-10T06:00"},
		{"same airport", query("DUB", "DUB", "2025-03-10T06:00", "2025-03-10T21:00"), "invalid argument: departure and arrival must differ"},
		{"malformed timestamp", query("DUB", "WRO", "2025-03-10 06:00", "2025-03-10T21:00"), xtime.ErrInvalidLocalDateTime.Error()},
		{"timestamp with offset", query("DUB", "WRO", "2025-03-10T06:00+01:00", "2025-03-10T21:00"), xtime.ErrInvalidLocalDateTime.Error()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := get(newTestEcho(testSearch(nil)), "/interconnections", tc.q)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.JSONEq(t, `{"error":"`+tc.message+`"}`, rec.Body.String())
			assert.Contains(t, rec.Header().Get(echo.HeaderCacheControl), "no-store")
		})
	}
}

func TestInterconnectionsHandler_ExternalServiceError(t *testing.T) {
	rec := get(newTestEcho(testSearch(errors.New("routes: 503 Service Unavailable"))), "/interconnections", query("DUB", "WRO", "2025-03-10T06:00", "2025-03-10T21:00"))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.JSONEq(t, `{"error":"error while querying the flight data provider"}`, rec.Body.String())
}

func TestInterconnectionsHandler_UnexpectedError(t *testing.T) {
	rec := get(newTestEcho(failingSearch{errors.New("secret internals")}), "/interconnections", query("DUB", "WRO", "2025-03-10T06:00", "2025-03-10T21:00"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "secret")
}

func TestInterconnectionsHandler_PNG(t *testing.T) {
	rec := get(newTestEcho(testSearch(nil)), "/interconnections/png", query("DUB", "WRO", "2025-03-10T06:00", "2025-03-10T21:00"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.True(t, len(rec.Body.Bytes()) > 8)
	assert.Equal(t, []byte("\x89PNG"), rec.Body.Bytes()[:4])
}

func TestHealth(t *testing.T) {
	rec := get(newTestEcho(testSearch(nil)), "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestNotFound(t *testing.T) {
	rec := get(newTestEcho(testSearch(nil)), "/unknown", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":"Not Found"}`, rec.Body.String())
}
