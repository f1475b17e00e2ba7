package customer_lookup

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	lookupUC "github.com/dvbeauty/DVB-BookingService/internal/usecase/lookup_customer"
)

type fakeUseCase struct {
	executeFunc func(ctx context.Context, req *lookupUC.Request) (*lookupUC.Response, error)
}

func (f *fakeUseCase) Execute(ctx context.Context, req *lookupUC.Request) (*lookupUC.Response, error) {
	return f.executeFunc(ctx, req)
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func TestHandle_Found(t *testing.T) {
	uc := &fakeUseCase{
		executeFunc: func(ctx context.Context, req *lookupUC.Request) (*lookupUC.Response, error) {
			return &lookupUC.Response{Found: true, Name: "Dana"}, nil
		},
	}
	handler := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/customer-lookup?phone=555-0100", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, true, body["found"])

	profile, ok := body["profile"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Dana", profile["name"])

	// В профиле только имя, никаких контактов и заметок
	assert.Len(t, profile, 1)
}

func TestHandle_NotFound(t *testing.T) {
	uc := &fakeUseCase{
		executeFunc: func(ctx context.Context, req *lookupUC.Request) (*lookupUC.Response, error) {
			return &lookupUC.Response{Found: false}, nil
		},
	}
	handler := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/customer-lookup?email=new@example.com", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["found"])
	assert.NotContains(t, body, "profile")
}

func TestHandle_MissingContact(t *testing.T) {
	uc := &fakeUseCase{
		executeFunc: func(ctx context.Context, req *lookupUC.Request) (*lookupUC.Response, error) {
			return nil, lookupUC.ErrMissingContact
		},
	}
	handler := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/customer-lookup", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "phone or email required", body["error"])
}

func TestHandle_InternalError(t *testing.T) {
	uc := &fakeUseCase{
		executeFunc: func(ctx context.Context, req *lookupUC.Request) (*lookupUC.Response, error) {
			return nil, errors.New("boom")
		},
	}
	handler := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/customer-lookup?phone=1", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestHandle_PassesQueryParams(t *testing.T) {
	var got *lookupUC.Request
	uc := &fakeUseCase{
		executeFunc: func(ctx context.Context, req *lookupUC.Request) (*lookupUC.Response, error) {
			got = req
			return &lookupUC.Response{Found: false}, nil
		},
	}
	handler := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/customer-lookup?phone=555-0100&email=dana@example.com", nil)
	rec := httptest.NewRecorder()
	handler.Handle(rec, req)

	require.NotNil(t, got)
	assert.Equal(t, "555-0100", got.Phone)
	assert.Equal(t, "dana@example.com", got.Email)
}
