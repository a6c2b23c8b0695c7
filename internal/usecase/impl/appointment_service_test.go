package impl

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"lifeline/internal/domain/entity"
	domainerrors "lifeline/internal/domain/errors"
	"lifeline/internal/domain/repository"
	"lifeline/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAppointmentRepository is a testify mock of repository.AppointmentRepository.
type MockAppointmentRepository struct {
	mock.Mock
}

func (m *MockAppointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	args := m.Called(ctx, appointment)

	return args.Error(0)
}

func (m *MockAppointmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Appointment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) FindAll(ctx context.Context) ([]*entity.Appointment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Appointment), args.Error(1)
}

func (m *MockAppointmentRepository) Update(ctx context.Context, appointment *entity.Appointment) error {
	args := m.Called(ctx, appointment)

	return args.Error(0)
}

func (m *MockAppointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)

	return args.Error(0)
}

func createTestAppointmentService(t *testing.T) (usecase.AppointmentUsecase, *MockAppointmentRepository) {
	t.Helper()

	repo := new(MockAppointmentRepository)
	service := NewAppointmentService(AppointmentServiceParams{
		AppointmentRepo: repo,
		Logger:          slog.New(slog.DiscardHandler),
	})

	return service, repo
}

func TestAppointmentService_Create_DefaultsToScheduled(t *testing.T) {
	service, repo := createTestAppointmentService(t)
	ctx := context.Background()

	repo.On("Create", ctx, mock.AnythingOfType("*entity.Appointment")).Return(nil)

	appointment, err := service.Create(ctx, usecase.AppointmentInput{
		DonorID:         uuid.New(),
		CenterID:        uuid.New(),
		AppointmentDate: time.Now().AddDate(0, 0, 7),
		AppointmentTime: "10:00 AM",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentScheduled, appointment.Status)
}

func TestAppointmentService_Create_RejectsUnknownStatus(t *testing.T) {
	service, repo := createTestAppointmentService(t)

	appointment, err := service.Create(context.Background(), usecase.AppointmentInput{
		DonorID:  uuid.New(),
		CenterID: uuid.New(),
		Status:   "rescheduled",
	})
	require.Error(t, err)
	assert.Nil(t, appointment)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	repo.AssertNotCalled(t, "Create")
}

func TestAppointmentService_Ticket_RendersPNG(t *testing.T) {
	service, repo := createTestAppointmentService(t)
	ctx := context.Background()

	id := uuid.New()
	repo.On("FindByID", ctx, id).Return(&entity.Appointment{
		ID:              id,
		DonorID:         uuid.New(),
		CenterID:        uuid.New(),
		AppointmentDate: time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "10:00 AM",
		Status:          entity.AppointmentScheduled,
	}, nil)

	png, err := service.Ticket(ctx, id)
	require.NoError(t, err)
	require.NotEmpty(t, png)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestAppointmentService_Ticket_NotFound(t *testing.T) {
	service, repo := createTestAppointmentService(t)
	ctx := context.Background()

	id := uuid.New()
	repo.On("FindByID", ctx, id).Return(nil, repository.ErrAppointmentNotFound)

	png, err := service.Ticket(ctx, id)
	require.Error(t, err)
	assert.Nil(t, png)
	assert.ErrorIs(t, err, domainerrors.ErrAppointmentNotFound)
}
