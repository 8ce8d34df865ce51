package bookings

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
	deleted []string
}

func (f *fakeRepo) GetByKey(_ context.Context, key string) (*domain.Booking, error) {
	if b, ok := f.records[key]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
}

func (f *fakeRepo) List(_ context.Context) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0, len(f.records))
	for _, b := range f.records {
		out = append(out, b)
	}
	return out, nil
}

func (f *fakeRepo) UpdateFields(_ context.Context, key string, fields bookingRepo.UpdateFields) error {
	b, ok := f.records[key]
	if !ok {
		return bookingRepo.ErrBookingNotFound
	}
	if fields.Status != nil {
		b.Status = domain.BookingStatus(*fields.Status)
	}
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, key string) error {
	delete(f.records, key)
	f.deleted = append(f.deleted, key)
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var admin = domain.Actor{Name: "admin", Admin: true}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:          domain.DeriveKey("2025-10-15", 3, "08:00"),
		EquipmentID: 3,
		Date:        "2025-10-15",
		TimeSlotID:  "08:00",
		Status:      domain.StatusPending,
		UserEmail:   ptr.Ptr("ana@unal.edu.co"),
	}
}

func TestUpdateStatus_ApprovePending(t *testing.T) {
	b := pendingBooking()
	repo := &fakeRepo{records: map[string]*domain.Booking{b.ID: b}}
	svc := NewService(repo, nopLogger{})

	updated, err := svc.UpdateStatus(context.Background(), b.ID, domain.StatusApproved, admin)

	require.NoError(t, err)
	assert.Equal(t, domain.StatusApproved, updated.Status)
	assert.Equal(t, domain.StatusApproved, repo.records[b.ID].Status)
}

func TestUpdateStatus_NonAdminRejected(t *testing.T) {
	b := pendingBooking()
	svc := NewService(&fakeRepo{records: map[string]*domain.Booking{b.ID: b}}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), b.ID, domain.StatusApproved, domain.Anonymous)

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdateStatus_BlockedNotReachable(t *testing.T) {
	b := pendingBooking()
	svc := NewService(&fakeRepo{records: map[string]*domain.Booking{b.ID: b}}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), b.ID, domain.StatusBlocked, admin)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateStatus_AvailableNotReachable(t *testing.T) {
	b := pendingBooking()
	svc := NewService(&fakeRepo{records: map[string]*domain.Booking{b.ID: b}}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), b.ID, domain.StatusAvailable, admin)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateStatus_ApprovedIsTerminal(t *testing.T) {
	b := pendingBooking()
	b.Status = domain.StatusApproved
	svc := NewService(&fakeRepo{records: map[string]*domain.Booking{b.ID: b}}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), b.ID, domain.StatusApproved, admin)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestUpdateStatus_UnknownStatus(t *testing.T) {
	b := pendingBooking()
	svc := NewService(&fakeRepo{records: map[string]*domain.Booking{b.ID: b}}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), b.ID, "rechazada", admin)

	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestUpdateStatus_NotFound(t *testing.T) {
	svc := NewService(&fakeRepo{records: map[string]*domain.Booking{}}, nopLogger{})

	_, err := svc.UpdateStatus(context.Background(), "2025-10-15-3-08:00", domain.StatusApproved, admin)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestRemove_DeletesRecord(t *testing.T) {
	b := pendingBooking()
	repo := &fakeRepo{records: map[string]*domain.Booking{b.ID: b}}
	svc := NewService(repo, nopLogger{})

	err := svc.Remove(context.Background(), b.ID, admin)

	require.NoError(t, err)
	assert.NotContains(t, repo.records, b.ID)
}

func TestRemove_IdempotentOnAbsentKey(t *testing.T) {
	repo := &fakeRepo{records: map[string]*domain.Booking{}}
	svc := NewService(repo, nopLogger{})

	err := svc.Remove(context.Background(), "2025-10-15-3-08:00", admin)

	assert.NoError(t, err)
}

func TestRemove_NonAdminRejected(t *testing.T) {
	b := pendingBooking()
	repo := &fakeRepo{records: map[string]*domain.Booking{b.ID: b}}
	svc := NewService(repo, nopLogger{})

	err := svc.Remove(context.Background(), b.ID, domain.Anonymous)

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, repo.records, b.ID)
}

func TestValidateNewBooking_UserPending(t *testing.T) {
	b := pendingBooking()

	assert.NoError(t, ValidateNewBooking(b, domain.Anonymous))
}

func TestValidateNewBooking_UserCannotCreateApproved(t *testing.T) {
	b := pendingBooking()
	b.Status = domain.StatusApproved

	assert.ErrorIs(t, ValidateNewBooking(b, domain.Anonymous), ErrUnauthorized)
}

func TestValidateNewBooking_UserCannotSetBlockFields(t *testing.T) {
	b := pendingBooking()
	b.BlockedReason = ptr.Ptr("mantenimiento")

	assert.ErrorIs(t, ValidateNewBooking(b, domain.Anonymous), ErrUnauthorized)
}

func TestValidateNewBooking_AdminCreatesApproved(t *testing.T) {
	b := pendingBooking()
	b.Status = domain.StatusApproved

	assert.NoError(t, ValidateNewBooking(b, admin))
}

func TestValidateNewBooking_UnknownStatus(t *testing.T) {
	b := pendingBooking()
	b.Status = "rechazada"

	assert.ErrorIs(t, ValidateNewBooking(b, admin), ErrInvalidStatus)
}
