package customers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dvbeauty/DVB-BookingService/internal/domain"
	customerRepo "github.com/dvbeauty/DVB-BookingService/internal/infra/storage/customer"
	"github.com/dvbeauty/DVB-BookingService/pkg/ptr"
)

type fakeCustomerRepo struct {
	findByContactFunc func(ctx context.Context, phone, email string) (*domain.Customer, error)
	createFunc        func(ctx context.Context, c *domain.Customer) (*domain.Customer, error)

	updated []*domain.Customer
	created []*domain.Customer
}

func (f *fakeCustomerRepo) FindByContact(ctx context.Context, phone, email string) (*domain.Customer, error) {
	return f.findByContactFunc(ctx, phone, email)
}

func (f *fakeCustomerRepo) Create(ctx context.Context, c *domain.Customer) (*domain.Customer, error) {
	f.created = append(f.created, c)
	if f.createFunc != nil {
		return f.createFunc(ctx, c)
	}
	created := *c
	created.ID = 1
	return &created, nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, c *domain.Customer) error {
	f.updated = append(f.updated, c)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(format string, v ...interface{})  {}
func (noopLogger) Warn(format string, v ...interface{})  {}
func (noopLogger) Error(format string, v ...interface{}) {}

func noMatch(ctx context.Context, phone, email string) (*domain.Customer, error) {
	return nil, customerRepo.ErrCustomerNotFound
}

func TestResolve_CreatesNewCustomer(t *testing.T) {
	repo := &fakeCustomerRepo{findByContactFunc: noMatch}
	svc := NewService(repo, noopLogger{})

	customer, err := svc.Resolve(context.Background(), ResolveInput{
		Name:  "Dana",
		Phone: "555-0100",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), customer.ID)
	require.Len(t, repo.created, 1)
	assert.Equal(t, "Dana", repo.created[0].Name)
	require.NotNil(t, repo.created[0].Phone)
	assert.Equal(t, "555-0100", *repo.created[0].Phone)
	assert.Nil(t, repo.created[0].Email)
	assert.Nil(t, repo.created[0].Notes)
	assert.Empty(t, repo.updated)
}

func TestResolve_MatchesByPhoneAndOverwritesIdentity(t *testing.T) {
	existing := &domain.Customer{
		ID:    7,
		Name:  "D. Smith",
		Phone: ptr.Ptr("555-0100"),
		Email: ptr.Ptr("old@example.com"),
	}
	repo := &fakeCustomerRepo{
		findByContactFunc: func(ctx context.Context, phone, email string) (*domain.Customer, error) {
			return existing, nil
		},
	}
	svc := NewService(repo, noopLogger{})

	customer, err := svc.Resolve(context.Background(), ResolveInput{
		Name:  "Dana Smith",
		Phone: "555-0100",
		Email: "new@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, int64(7), customer.ID)
	require.Len(t, repo.updated, 1)
	assert.Equal(t, "Dana Smith", repo.updated[0].Name)
	assert.Equal(t, "new@example.com", *repo.updated[0].Email)
	assert.Empty(t, repo.created)
}

func TestResolve_EmptyChannelBlanksStoredValue(t *testing.T) {
	// Форма без email затирает ранее известный email - присланное
	// состояние считается истиной
	existing := &domain.Customer{
		ID:    7,
		Name:  "Dana",
		Phone: ptr.Ptr("555-0100"),
		Email: ptr.Ptr("old@example.com"),
	}
	repo := &fakeCustomerRepo{
		findByContactFunc: func(ctx context.Context, phone, email string) (*domain.Customer, error) {
			return existing, nil
		},
	}
	svc := NewService(repo, noopLogger{})

	_, err := svc.Resolve(context.Background(), ResolveInput{
		Name:  "Dana",
		Phone: "555-0100",
	})

	require.NoError(t, err)
	require.Len(t, repo.updated, 1)
	assert.Nil(t, repo.updated[0].Email)
}

func TestResolve_NotesMergeSemantics(t *testing.T) {
	tests := []struct {
		name        string
		customNotes string
		existing    *string
		want        *string
	}{
		{"fresh notes replace stored", "new notes", ptr.Ptr("old notes"), ptr.Ptr("new notes")},
		{"empty notes keep stored", "", ptr.Ptr("old notes"), ptr.Ptr("old notes")},
		{"empty notes stay nil", "", nil, nil},
		{"fresh notes fill nil", "new notes", nil, ptr.Ptr("new notes")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			existing := &domain.Customer{
				ID:    7,
				Name:  "Dana",
				Phone: ptr.Ptr("555-0100"),
				Notes: tt.existing,
			}
			repo := &fakeCustomerRepo{
				findByContactFunc: func(ctx context.Context, phone, email string) (*domain.Customer, error) {
					return existing, nil
				},
			}
			svc := NewService(repo, noopLogger{})

			_, err := svc.Resolve(context.Background(), ResolveInput{
				Name:        "Dana",
				Phone:       "555-0100",
				CustomNotes: tt.customNotes,
			})

			require.NoError(t, err)
			require.Len(t, repo.updated, 1)
			if tt.want == nil {
				assert.Nil(t, repo.updated[0].Notes)
			} else {
				require.NotNil(t, repo.updated[0].Notes)
				assert.Equal(t, *tt.want, *repo.updated[0].Notes)
			}
		})
	}
}

func TestResolve_RepeatContactDoesNotDuplicate(t *testing.T) {
	// Вторая заявка с тем же контактом обновляет существующую карточку
	repo := &fakeCustomerRepo{findByContactFunc: noMatch}
	svc := NewService(repo, noopLogger{})

	first, err := svc.Resolve(context.Background(), ResolveInput{Name: "Dana", Phone: "555-0100"})
	require.NoError(t, err)

	repo.findByContactFunc = func(ctx context.Context, phone, email string) (*domain.Customer, error) {
		return first, nil
	}

	second, err := svc.Resolve(context.Background(), ResolveInput{Name: "Dana", Phone: "555-0100"})
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, repo.created, 1)
	assert.Len(t, repo.updated, 1)
}

func TestLookup_RequiresContact(t *testing.T) {
	svc := NewService(&fakeCustomerRepo{}, noopLogger{})

	_, err := svc.Lookup(context.Background(), "", "")

	assert.ErrorIs(t, err, ErrMissingContact)
}

func TestLookup_NotFound(t *testing.T) {
	repo := &fakeCustomerRepo{findByContactFunc: noMatch}
	svc := NewService(repo, noopLogger{})

	_, err := svc.Lookup(context.Background(), "555-0100", "")

	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestLookup_ReadOnly(t *testing.T) {
	repo := &fakeCustomerRepo{
		findByContactFunc: func(ctx context.Context, phone, email string) (*domain.Customer, error) {
			return &domain.Customer{ID: 3, Name: "Dana"}, nil
		},
	}
	svc := NewService(repo, noopLogger{})

	customer, err := svc.Lookup(context.Background(), "", "dana@example.com")

	require.NoError(t, err)
	assert.Equal(t, int64(3), customer.ID)
	assert.Empty(t, repo.created)
	assert.Empty(t, repo.updated)
}
