package create_booking

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingUC "github.com/dvbeauty/DVB-BookingService/internal/usecase/create_booking"
)

type fakeUseCase struct {
	executeFunc func(ctx context.Context, req *bookingUC.Request) (*bookingUC.Response, error)
	requests    []*bookingUC.Request
}

func (f *fakeUseCase) Execute(ctx context.Context, req *bookingUC.Request) (*bookingUC.Response, error) {
	f.requests = append(f.requests, req)
	return f.executeFunc(ctx, req)
}

type fakeHomeRenderer struct {
	status int
	errors []string
	called bool
}

func (f *fakeHomeRenderer) RenderPage(w http.ResponseWriter, r *http.Request, status int, formErrors []string, success bool) {
	f.called = true
	f.status = status
	f.errors = formErrors
	w.WriteHeader(status)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func postForm(t *testing.T, handler *Handler, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)
	return rec
}

func validForm() url.Values {
	return url.Values{
		"slotId":   {"10"},
		"name":     {"Dana"},
		"phone":    {"555-0100"},
		"services": {"1", "2"},
	}
}

func TestHandle_SuccessRedirects(t *testing.T) {
	uc := &fakeUseCase{
		executeFunc: func(ctx context.Context, req *bookingUC.Request) (*bookingUC.Response, error) {
			return &bookingUC.Response{BookingID: 77, SlotID: req.SlotID}, nil
		},
	}
	home := &fakeHomeRenderer{}
	handler := NewHandler(uc, home, noopLogger{})

	rec := postForm(t, handler, validForm())

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/?booked=1", rec.Header().Get("Location"))
	assert.False(t, home.called)
}

func TestHandle_ValidationRerendersHomeWithMessages(t *testing.T) {
	uc := &fakeUseCase{
		executeFunc: func(ctx context.Context, req *bookingUC.Request) (*bookingUC.Response, error) {
			return nil, bookingUC.NewValidationError("Name is required.", "Please choose at least one service.")
		},
	}
	home := &fakeHomeRenderer{}
	handler := NewHandler(uc, home, noopLogger{})

	rec := postForm(t, handler, url.Values{"slotId": {"10"}})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.True(t, home.called)
	assert.Equal(t, http.StatusBadRequest, home.status)
	assert.Equal(t, []string{"Name is required.", "Please choose at least one service."}, home.errors)
}

func TestHandle_SlotNotFoundRerendersHome(t *testing.T) {
	uc := &fakeUseCase{
		executeFunc: func(ctx context.Context, req *bookingUC.Request) (*bookingUC.Response, error) {
			return nil, bookingUC.ErrSlotNotFound
		},
	}
	home := &fakeHomeRenderer{}
	handler := NewHandler(uc, home, noopLogger{})

	rec := postForm(t, handler, validForm())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, []string{bookingUC.MsgSlotUnavailable}, home.errors)
}

func TestHandle_SlotFullIsPlainText(t *testing.T) {
	uc := &fakeUseCase{
		executeFunc: func(ctx context.Context, req *bookingUC.Request) (*bookingUC.Response, error) {
			return nil, bookingUC.ErrSlotFull
		},
	}
	home := &fakeHomeRenderer{}
	handler := NewHandler(uc, home, noopLogger{})

	rec := postForm(t, handler, validForm())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, bookingUC.MsgSlotFull, rec.Body.String())
	assert.False(t, home.called)
}

func TestHandle_InternalErrorRerendersHomeGeneric(t *testing.T) {
	uc := &fakeUseCase{
		executeFunc: func(ctx context.Context, req *bookingUC.Request) (*bookingUC.Response, error) {
			return nil, bookingUC.ErrInternal
		},
	}
	home := &fakeHomeRenderer{}
	handler := NewHandler(uc, home, noopLogger{})

	rec := postForm(t, handler, validForm())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	require.True(t, home.called)
	assert.Equal(t, []string{msgBookingFailed}, home.errors)
}

func TestParseForm_MapsFields(t *testing.T) {
	form := url.Values{
		"slotId":      {"42"},
		"name":        {"Dana"},
		"phone":       {"555-0100"},
		"email":       {"dana@example.com"},
		"customNotes": {"allergic to latex"},
		"services":    {"1", "2", "oops"},
	}

	req := parseForm(form)

	assert.Equal(t, int64(42), req.SlotID)
	assert.Equal(t, "Dana", req.Name)
	assert.Equal(t, "555-0100", req.Phone)
	assert.Equal(t, "dana@example.com", req.Email)
	assert.Equal(t, "allergic to latex", req.CustomNotes)
	// Непарсибельная услуга превращается в 0 и не теряется
	assert.Equal(t, []int64{1, 2, 0}, req.ServiceIDs)
}

func TestParseForm_UnparsableSlotIsZero(t *testing.T) {
	req := parseForm(url.Values{"slotId": {"abc"}})
	assert.Equal(t, int64(0), req.SlotID)
}
