package render

import (
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvbeauty/DVB-BookingService/internal/domain"
	"github.com/dvbeauty/DVB-BookingService/internal/service/content"
	"github.com/dvbeauty/DVB-BookingService/pkg/ptr"
)

func newRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(filepath.Join("..", "..", "..", "web", "templates"))
	require.NoError(t, err)
	return r
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestHome_RendersSlotsAndErrors(t *testing.T) {
	r := newRenderer(t)

	start := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	data := HomeData{
		Services: []*domain.Service{
			{ID: 1, Name: "Gel manicure", DurationMinutes: 60, PriceCents: 4550, IsActive: true},
		},
		Slots: []*domain.SlotWithCount{
			{
				AvailabilitySlot: domain.AvailabilitySlot{
					ID:          10,
					StartAt:     start,
					EndAt:       start.Add(time.Hour),
					Label:       ptr.Ptr("Afternoon"),
					MaxBookings: 2,
				},
				BookingCount: 1,
			},
		},
		Errors: []string{"Name is required."},
	}

	rec := httptest.NewRecorder()
	require.NoError(t, r.Home(rec, 400, data))

	body := rec.Body.String()
	assert.Equal(t, 400, rec.Code)
	assert.Contains(t, body, "Gel manicure")
	assert.Contains(t, body, "Afternoon")
	assert.Contains(t, body, "Name is required.")
	assert.Contains(t, body, "1 left")
}

func TestHome_EscapesUserContent(t *testing.T) {
	r := newRenderer(t)

	data := HomeData{
		Errors: []string{`<script>alert("x")</script>`},
	}

	rec := httptest.NewRecorder()
	require.NoError(t, r.Home(rec, 200, data))

	assert.NotContains(t, rec.Body.String(), `<script>alert`)
}

func TestPost_RendersComments(t *testing.T) {
	r := newRenderer(t)

	pwc := &content.PostWithComments{
		Post: &domain.BlogPost{ID: 3, Title: "Spring looks", Body: "Our favorites."},
		Comments: []*domain.Comment{
			{ID: 1, PostID: 3, AuthorName: "Dana", AuthorComment: "Love it!"},
		},
	}

	rec := httptest.NewRecorder()
	require.NoError(t, r.Post(rec, 200, pwc))

	body := rec.Body.String()
	assert.Contains(t, body, "Spring looks")
	assert.Contains(t, body, "Dana")
	assert.Contains(t, body, "/posts/3/comments")
}

func TestAdminLogin_ShowsError(t *testing.T) {
	r := newRenderer(t)

	rec := httptest.NewRecorder()
	require.NoError(t, r.AdminLogin(rec, 401, AdminLoginData{Error: "Invalid credentials."}))

	assert.Equal(t, 401, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid credentials.")
}

func TestAdminDashboard_RendersBookings(t *testing.T) {
	r := newRenderer(t)

	start := time.Date(2026, 9, 10, 14, 0, 0, 0, time.UTC)
	data := AdminDashboardData{
		Bookings: []*domain.AdminBookingRow{
			{
				ID:            5,
				Status:        domain.StatusConfirmed,
				CustomNotes:   ptr.Ptr("allergic to latex"),
				SlotStartAt:   start,
				SlotEndAt:     start.Add(time.Hour),
				CustomerName:  "Dana",
				CustomerPhone: ptr.Ptr("555-0100"),
			},
		},
	}

	rec := httptest.NewRecorder()
	require.NoError(t, r.AdminDashboard(rec, 200, data))

	body := rec.Body.String()
	assert.Contains(t, body, "Dana")
	assert.Contains(t, body, "555-0100")
	assert.Contains(t, body, "allergic to latex")
}
