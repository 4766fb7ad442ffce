package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestHandler() (*Handler, *mockRepo) {
	svc, repo := newTestService()
	return NewHandler(svc), repo
}

func postJSON(e *echo.Echo, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func bookingBody(overrides map[string]string) string {
	fields := map[string]string{
		"doctor_id":        "1",
		"patient_name":     "Jane Roe",
		"patient_email":    "jane@example.com",
		"appointment_date": "2026-03-11",
		"appointment_time": "10:00",
	}
	for k, v := range overrides {
		fields[k] = v
	}
	b, _ := json.Marshal(fields)
	return string(b)
}

func TestCreateAppointment_Created(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()
	c, rec := postJSON(e, "/api/appointments", bookingBody(nil))

	if err := h.CreateAppointment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var got map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got["status"] != StatusScheduled {
		t.Errorf("expected scheduled status, got %v", got["status"])
	}
	if got["appointment_date"] != "2026-03-11" {
		t.Errorf("expected plain calendar date, got %v", got["appointment_date"])
	}
}

func TestCreateAppointment_MissingField(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()
	c, _ := postJSON(e, "/api/appointments", bookingBody(map[string]string{"patient_name": ""}))

	err := h.CreateAppointment(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
	if httpErr.Message != "all fields are required" {
		t.Errorf("unexpected message: %v", httpErr.Message)
	}
}

func TestCreateAppointment_Conflict(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()

	c, rec := postJSON(e, "/api/appointments", bookingBody(nil))
	if err := h.CreateAppointment(c); err != nil {
		t.Fatal(err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("first booking: expected 201, got %d", rec.Code)
	}

	c, _ = postJSON(e, "/api/appointments", bookingBody(map[string]string{"patient_email": "other@example.com"}))
	err := h.CreateAppointment(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %v", err)
	}
	if httpErr.Message != "slot already booked" {
		t.Errorf("unexpected message: %v", httpErr.Message)
	}
}

func TestCreateAppointment_BadBody(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()
	c, _ := postJSON(e, "/api/appointments", "{not json")

	err := h.CreateAppointment(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for malformed body, got %v", err)
	}
}

func TestGetAppointment(t *testing.T) {
	h, repo := newTestHandler()
	appt := &Appointment{DoctorID: 1, PatientName: "Jane Roe", PatientEmail: "jane@example.com",
		Date: testToday.AddDate(0, 0, 1), Time: "09:00", Status: StatusScheduled}
	if err := repo.Create(context.Background(), appt); err != nil {
		t.Fatal(err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.FormatInt(appt.ID, 10))

	if err := h.GetAppointment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}
}

func TestGetAppointment_NotFound(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("404")

	err := h.GetAppointment(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %v", err)
	}
}

func TestCancelAppointment(t *testing.T) {
	h, repo := newTestHandler()
	appt := &Appointment{DoctorID: 1, PatientName: "Jane Roe", PatientEmail: "jane@example.com",
		Date: testToday.AddDate(0, 0, 1), Time: "09:00", Status: StatusScheduled}
	if err := repo.Create(context.Background(), appt); err != nil {
		t.Fatal(err)
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(strconv.FormatInt(appt.ID, 10))

	if err := h.CancelAppointment(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", rec.Code)
	}

	stored, err := repo.GetByID(context.Background(), appt.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Status != StatusCancelled {
		t.Errorf("expected cancelled, got %s", stored.Status)
	}
}

func TestCancelAppointment_BadID(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.CancelAppointment(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}

func TestListAppointments(t *testing.T) {
	h, repo := newTestHandler()
	for _, ts := range []string{"09:00", "09:30"} {
		appt := &Appointment{DoctorID: 1, PatientName: "Jane Roe", PatientEmail: "jane@example.com",
			Date: testToday.AddDate(0, 0, 1), Time: ts, Status: StatusScheduled}
		if err := repo.Create(context.Background(), appt); err != nil {
			t.Fatal(err)
		}
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/?doctor_id=1", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.ListAppointments(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp struct {
		Data  []json.RawMessage `json:"data"`
		Total int               `json:"total"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Total != 2 || len(resp.Data) != 2 {
		t.Errorf("expected 2 appointments, got total=%d len=%d", resp.Total, len(resp.Data))
	}
}

func TestListAppointments_MissingDoctorID(t *testing.T) {
	h, _ := newTestHandler()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.ListAppointments(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %v", err)
	}
}
