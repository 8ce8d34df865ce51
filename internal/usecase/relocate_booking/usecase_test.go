package relocate_booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdrianLinares/microreserva/internal/domain"
	bookingRepo "github.com/AdrianLinares/microreserva/internal/infra/storage/booking"
	"github.com/AdrianLinares/microreserva/pkg/ptr"
)

type fakeRepo struct {
	records map[string]*domain.Booking
}

func (f *fakeRepo) GetByKey(_ context.Context, key string) (*domain.Booking, error) {
	if b, ok := f.records[key]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeRepo) UpdateFields(_ context.Context, key string, fields bookingRepo.UpdateFields) error {
	b, ok := f.records[key]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if fields.Date != nil {
		b.Date = *fields.Date
	}
	if fields.EquipmentID != nil {
		b.EquipmentID = *fields.EquipmentID
	}
	if fields.TimeSlotID != nil {
		b.TimeSlotID = *fields.TimeSlotID
	}
	return nil
}

func (f *fakeRepo) Rename(_ context.Context, oldKey string, b *domain.Booking) error {
	if _, ok := f.records[oldKey]; !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if _, taken := f.records[b.ID]; taken {
		return bookingRepo.ErrSlotTaken
	}
	delete(f.records, oldKey)
	f.records[b.ID] = b
	return nil
}

type fakeResolver struct {
	occupied map[string]*domain.Booking
}

func (f *fakeResolver) Resolve(_ context.Context, equipmentID int, date, timeSlotID string) (domain.Slot, error) {
	if b, ok := f.occupied[domain.DeriveKey(date, equipmentID, timeSlotID)]; ok {
		return domain.OccupiedSlot(b), nil
	}
	return domain.EmptySlot(), nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var admin = domain.Actor{Name: "admin", Admin: true}

func approvedBooking() *domain.Booking {
	return &domain.Booking{
		ID:          domain.DeriveKey("2025-10-15", 3, "08:00"),
		EquipmentID: 3,
		Date:        "2025-10-15",
		TimeSlotID:  "08:00",
		Status:      domain.StatusApproved,
		UserEmail:   ptr.Ptr("ana@unal.edu.co"),
	}
}

func TestExecute_RelocatesBooking(t *testing.T) {
	b := approvedBooking()
	repo := &fakeRepo{records: map[string]*domain.Booking{b.ID: b}}
	uc := NewUseCase(repo, &fakeResolver{}, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Key:            b.ID,
		NewDate:        "2025-10-16",
		NewEquipmentID: 5,
		NewTimeSlotID:  "12:00",
		Actor:          admin,
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-10-16-5-12:00", resp.NewKey)

	// Старый ключ освобождён, запись живет под новым ключом с новыми
	// координатами и прежними данными пользователя.
	assert.NotContains(t, repo.records, "2025-10-15-3-08:00")
	moved := repo.records["2025-10-16-5-12:00"]
	require.NotNil(t, moved)
	assert.Equal(t, "2025-10-16", moved.Date)
	assert.Equal(t, 5, moved.EquipmentID)
	assert.Equal(t, "12:00", moved.TimeSlotID)
	assert.Equal(t, domain.StatusApproved, moved.Status)
	require.NotNil(t, moved.UserEmail)
	assert.Equal(t, "ana@unal.edu.co", *moved.UserEmail)
}

func TestExecute_SameKeyUpdatesInPlace(t *testing.T) {
	b := approvedBooking()
	repo := &fakeRepo{records: map[string]*domain.Booking{b.ID: b}}
	uc := NewUseCase(repo, &fakeResolver{}, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		Key:            b.ID,
		NewDate:        "2025-10-15",
		NewEquipmentID: 3,
		NewTimeSlotID:  "08:00",
		Actor:          admin,
	})

	require.NoError(t, err)
	assert.Equal(t, b.ID, resp.NewKey)
	assert.Contains(t, repo.records, b.ID)
}

func TestExecute_TargetOccupied(t *testing.T) {
	b := approvedBooking()
	other := &domain.Booking{ID: domain.DeriveKey("2025-10-16", 5, "12:00"), Status: domain.StatusPending}
	repo := &fakeRepo{records: map[string]*domain.Booking{b.ID: b, other.ID: other}}
	resolver := &fakeResolver{occupied: map[string]*domain.Booking{other.ID: other}}
	uc := NewUseCase(repo, resolver, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Key:            b.ID,
		NewDate:        "2025-10-16",
		NewEquipmentID: 5,
		NewTimeSlotID:  "12:00",
		Actor:          admin,
	})

	assert.ErrorIs(t, err, ErrSlotOccupied)
	assert.Contains(t, repo.records, b.ID, "source record untouched")
}

func TestExecute_RenameConflictMapsToSlotOccupied(t *testing.T) {
	// Резолвер не видит занятости, но Rename ловит гонку на первичном ключе.
	b := approvedBooking()
	other := &domain.Booking{ID: domain.DeriveKey("2025-10-16", 5, "12:00"), Status: domain.StatusPending}
	repo := &fakeRepo{records: map[string]*domain.Booking{b.ID: b, other.ID: other}}
	uc := NewUseCase(repo, &fakeResolver{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Key:            b.ID,
		NewDate:        "2025-10-16",
		NewEquipmentID: 5,
		NewTimeSlotID:  "12:00",
		Actor:          admin,
	})

	assert.ErrorIs(t, err, ErrSlotOccupied)
}

func TestExecute_BookingNotFound(t *testing.T) {
	repo := &fakeRepo{records: map[string]*domain.Booking{}}
	uc := NewUseCase(repo, &fakeResolver{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Key:            "2025-10-15-3-08:00",
		NewDate:        "2025-10-16",
		NewEquipmentID: 5,
		NewTimeSlotID:  "12:00",
		Actor:          admin,
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_NonAdminRejected(t *testing.T) {
	b := approvedBooking()
	repo := &fakeRepo{records: map[string]*domain.Booking{b.ID: b}}
	uc := NewUseCase(repo, &fakeResolver{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Key:            b.ID,
		NewDate:        "2025-10-16",
		NewEquipmentID: 5,
		NewTimeSlotID:  "12:00",
		Actor:          domain.Anonymous,
	})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestExecute_InvalidDestination(t *testing.T) {
	b := approvedBooking()
	repo := &fakeRepo{records: map[string]*domain.Booking{b.ID: b}}
	uc := NewUseCase(repo, &fakeResolver{}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		Key:            b.ID,
		NewDate:        "2025-10-16",
		NewEquipmentID: 99,
		NewTimeSlotID:  "12:00",
		Actor:          admin,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}
