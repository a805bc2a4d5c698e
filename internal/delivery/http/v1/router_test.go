package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"clinic-booking-backend/config"
	"clinic-booking-backend/internal/delivery/http/response"
	"clinic-booking-backend/internal/domain"
	"clinic-booking-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockAppointmentUsecase struct {
	mock.Mock
}

func (m *MockAppointmentUsecase) Constraints(ctx context.Context) domain.PickerConstraints {
	return m.Called(ctx).Get(0).(domain.PickerConstraints)
}

func (m *MockAppointmentUsecase) Slots(ctx context.Context, date string) ([]string, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockAppointmentUsecase) ValidateField(ctx context.Context, req *domain.FieldCheckRequest) domain.FieldCheck {
	return m.Called(ctx, req).Get(0).(domain.FieldCheck)
}

func (m *MockAppointmentUsecase) Submit(ctx context.Context, req *domain.AppointmentRequest) (*domain.SubmissionResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SubmissionResult), args.Error(1)
}

func (m *MockAppointmentUsecase) ContactLink(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func newTestRouter(uc domain.AppointmentUsecase, submitLimit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(RouterDeps{
		AppointmentUC: uc,
		Config: &config.Config{
			RateLimitWindowSeconds: 60,
			RateLimitSubmitLimit:   submitLimit,
			RateLimitGlobalLimit:   1000,
		},
		Gatherer: prometheus.NewRegistry(),
	})
}

func do(r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) response.Response {
	t.Helper()
	var resp response.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestSubmitSuccess(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	result := &domain.SubmissionResult{
		SubmissionID: "s-1",
		Outcome:      domain.OutcomeSuccess,
		DeepLink:     "https://wa.me/522381228849?text=hola",
		Notification: &domain.Notification{Text: domain.MsgHandoffSuccess, Kind: domain.NotificationSuccess},
	}
	uc.On("Submit", mock.Anything, mock.MatchedBy(func(r *domain.AppointmentRequest) bool {
		return r.Name == "Juan Perez" && r.Time == "09:30"
	})).Return(result, nil)

	w := do(newTestRouter(uc, 5), http.MethodPost, "/v1/appointments", domain.AppointmentRequest{
		Name: "Juan Perez", Phone: "2381234567", Reason: "Dolor de cabeza persistente", Date: "2026-10-26", Time: "09:30",
	})
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.True(t, resp.Success)
	assert.Equal(t, domain.MsgHandoffSuccess, resp.Message)
	assert.NotEmpty(t, resp.RequestID)
	data := resp.Data.(map[string]interface{})
	assert.Equal(t, "https://wa.me/522381228849?text=hola", data["deep_link"])
	uc.AssertExpectations(t)
}

func TestSubmitRejected(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	result := &domain.SubmissionResult{Outcome: domain.OutcomeWeekendRejected}
	uc.On("Submit", mock.Anything, mock.Anything).Return(result,
		apperror.Unprocessable(domain.MsgWeekendRejected, domain.ErrWeekendSelected).
			WithDetails(map[string]interface{}{"submission": result}))

	w := do(newTestRouter(uc, 5), http.MethodPost, "/v1/appointments", domain.AppointmentRequest{Date: "2026-10-24"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decode(t, w)
	assert.False(t, resp.Success)
	assert.Equal(t, domain.MsgWeekendRejected, resp.Message)
	assert.Contains(t, w.Body.String(), "weekend_rejected")
}

func TestSubmitMalformedJSON(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	req := httptest.NewRequest(http.MethodPost, "/v1/appointments", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	newTestRouter(uc, 5).ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	uc.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
}

func TestSubmitRateLimited(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	uc.On("Submit", mock.Anything, mock.Anything).Return(&domain.SubmissionResult{
		Outcome:      domain.OutcomeSuccess,
		Notification: &domain.Notification{Text: domain.MsgHandoffSuccess},
	}, nil)
	r := newTestRouter(uc, 1)

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/v1/appointments", domain.AppointmentRequest{}).Code)
	assert.Equal(t, http.StatusTooManyRequests, do(r, http.MethodPost, "/v1/appointments", domain.AppointmentRequest{}).Code)
	uc.AssertNumberOfCalls(t, "Submit", 1)
}

func TestValidateFieldEndpoint(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	uc.On("ValidateField", mock.Anything, &domain.FieldCheckRequest{Field: "phone", Value: "12345"}).
		Return(domain.FieldCheck{Field: "phone", Valid: false, State: domain.FieldInvalid})
	r := newTestRouter(uc, 5)

	w := do(r, http.MethodPost, "/v1/appointments/validate", domain.FieldCheckRequest{Field: "phone", Value: "12345"})
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w).Data.(map[string]interface{})
	assert.Equal(t, "invalid", data["state"])

	w = do(r, http.MethodPost, "/v1/appointments/validate", domain.FieldCheckRequest{Field: "email", Value: "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSlotsEndpoint(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	uc.On("Slots", mock.Anything, "2026-10-25").Return(nil, nil)
	uc.On("Slots", mock.Anything, "2026-10-26").Return([]string{"08:00", "08:30"}, nil)
	r := newTestRouter(uc, 5)

	w := do(r, http.MethodGet, "/v1/appointments/slots?date=2026-10-26", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []interface{}{"08:00", "08:30"}, decode(t, w).Data)

	w = do(r, http.MethodGet, "/v1/appointments/slots?date=2026-10-25", nil)
	assert.JSONEq(t, `[]`, mustJSON(t, decode(t, w).Data))

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/v1/appointments/slots", nil).Code)
}

func TestConstraintsEndpoint(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	uc.On("Constraints", mock.Anything).Return(domain.PickerConstraints{MinDate: "2026-10-19", MinuteIncrement: 30})

	w := do(newTestRouter(uc, 5), http.MethodGet, "/v1/appointments/constraints", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w).Data.(map[string]interface{})
	assert.Equal(t, "2026-10-19", data["min_date"])
	assert.Equal(t, float64(30), data["minute_increment"])
}

func TestContactRedirect(t *testing.T) {
	uc := new(MockAppointmentUsecase)
	uc.On("ContactLink", mock.Anything).Return("https://wa.me/522381228849?text=Hola", nil)

	w := do(newTestRouter(uc, 5), http.MethodGet, "/v1/contact/whatsapp", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "https://wa.me/522381228849?text=Hola", w.Header().Get("Location"))
}

func TestHealthAndMetrics(t *testing.T) {
	r := newTestRouter(new(MockAppointmentUsecase), 5)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/v1/health", nil).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/metrics", nil).Code)
}

func mustJSON(t *testing.T, v interface{}) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}
