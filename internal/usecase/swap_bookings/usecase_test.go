package swap_bookings

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AdrianLinares/microreserva/internal/domain"
	bookingRepo "github.com/AdrianLinares/microreserva/internal/infra/storage/booking"
	"github.com/AdrianLinares/microreserva/pkg/ptr"
)

type fakeRepo struct {
	records map[string]*domain.Booking
	renames []string // старые ключи в порядке вызова
}

func (f *fakeRepo) GetByKey(_ context.Context, key string) (*domain.Booking, error) {
	if b, ok := f.records[key]; ok {
		return b, nil
	}
	return nil, bookingRepo.ErrBookingNotFound
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
	f.renames = append(f.renames, oldKey)
	return nil
}

func (f *fakeRepo) FindOccupiedKeys(_ context.Context, keys, excludeKeys []string) ([]*domain.Booking, error) {
	excluded := make(map[string]struct{}, len(excludeKeys))
	for _, k := range excludeKeys {
		excluded[k] = struct{}{}
	}
	var out []*domain.Booking
	for _, k := range keys {
		if _, skip := excluded[k]; skip {
			continue
		}
		if b, ok := f.records[k]; ok {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) FindByKeyPrefix(_ context.Context, prefix string) ([]*domain.Booking, error) {
	var out []*domain.Booking
	for k, b := range f.records {
		if strings.HasPrefix(k, prefix) {
			out = append(out, b)
		}
	}
	return out, nil
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

func booking(date string, equipmentID int, timeSlotID, email string) *domain.Booking {
	return &domain.Booking{
		ID:          domain.DeriveKey(date, equipmentID, timeSlotID),
		EquipmentID: equipmentID,
		Date:        date,
		TimeSlotID:  timeSlotID,
		Status:      domain.StatusApproved,
		UserEmail:   ptr.Ptr(email),
	}
}

func TestExecute_SwapsCoordinates(t *testing.T) {
	first := booking("2025-10-15", 3, "08:00", "ana@unal.edu.co")
	second := booking("2025-10-16", 5, "12:00", "luis@unal.edu.co")
	repo := &fakeRepo{records: map[string]*domain.Booking{first.ID: first, second.ID: second}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{
		FirstKey:  first.ID,
		SecondKey: second.ID,
		Actor:     admin,
	})

	require.NoError(t, err)
	// Каждая запись получает ключ, выведенный из принятых координат,
	// то есть прежний ключ партнёра.
	assert.Equal(t, second.ID, resp.FirstNewKey)
	assert.Equal(t, first.ID, resp.SecondNewKey)

	swappedFirst := repo.records[resp.FirstNewKey]
	require.NotNil(t, swappedFirst)
	assert.Equal(t, "ana@unal.edu.co", *swappedFirst.UserEmail)
	assert.Equal(t, "2025-10-16", swappedFirst.Date)
	assert.Equal(t, 5, swappedFirst.EquipmentID)
	assert.Equal(t, "12:00", swappedFirst.TimeSlotID)

	swappedSecond := repo.records[resp.SecondNewKey]
	require.NotNil(t, swappedSecond)
	assert.Equal(t, "luis@unal.edu.co", *swappedSecond.UserEmail)
	assert.Equal(t, "2025-10-15", swappedSecond.Date)
	assert.Equal(t, 3, swappedSecond.EquipmentID)
	assert.Equal(t, "08:00", swappedSecond.TimeSlotID)

	// Никаких осиротевших временных ключей после успешного обмена.
	for key := range repo.records {
		assert.False(t, domain.IsSwapTempKey(key))
	}
}

func TestExecute_ThreeStagedRenames(t *testing.T) {
	first := booking("2025-10-15", 3, "08:00", "ana@unal.edu.co")
	second := booking("2025-10-16", 5, "12:00", "luis@unal.edu.co")
	repo := &fakeRepo{records: map[string]*domain.Booking{first.ID: first, second.ID: second}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		FirstKey:  first.ID,
		SecondKey: second.ID,
		Actor:     admin,
	})

	require.NoError(t, err)
	require.Len(t, repo.renames, 3)
	assert.Equal(t, first.ID, repo.renames[0], "first booking staged to the temporary key")
	assert.Equal(t, second.ID, repo.renames[1])
	assert.True(t, domain.IsSwapTempKey(repo.renames[2]), "first booking leaves the temporary key last")
}

func TestExecute_SwapIsInvolution(t *testing.T) {
	first := booking("2025-10-15", 3, "08:00", "ana@unal.edu.co")
	second := booking("2025-10-16", 5, "12:00", "luis@unal.edu.co")
	repo := &fakeRepo{records: map[string]*domain.Booking{first.ID: first, second.ID: second}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{FirstKey: first.ID, SecondKey: second.ID, Actor: admin})
	require.NoError(t, err)
	_, err = uc.Execute(context.Background(), &Request{FirstKey: second.ID, SecondKey: first.ID, Actor: admin})
	require.NoError(t, err)

	restoredFirst := repo.records[first.ID]
	require.NotNil(t, restoredFirst)
	assert.Equal(t, "ana@unal.edu.co", *restoredFirst.UserEmail)
	assert.Equal(t, "2025-10-15", restoredFirst.Date)

	restoredSecond := repo.records[second.ID]
	require.NotNil(t, restoredSecond)
	assert.Equal(t, "luis@unal.edu.co", *restoredSecond.UserEmail)
}

func TestExecute_SameKeyRejected(t *testing.T) {
	uc := NewUseCase(&fakeRepo{records: map[string]*domain.Booking{}}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		FirstKey:  "2025-10-15-3-08:00",
		SecondKey: "2025-10-15-3-08:00",
		Actor:     admin,
	})

	assert.ErrorIs(t, err, ErrSameBooking)
}

func TestExecute_NonAdminRejected(t *testing.T) {
	uc := NewUseCase(&fakeRepo{records: map[string]*domain.Booking{}}, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		FirstKey:  "2025-10-15-3-08:00",
		SecondKey: "2025-10-16-5-12:00",
		Actor:     domain.Anonymous,
	})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestExecute_MissingBooking(t *testing.T) {
	first := booking("2025-10-15", 3, "08:00", "ana@unal.edu.co")
	repo := &fakeRepo{records: map[string]*domain.Booking{first.ID: first}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		FirstKey:  first.ID,
		SecondKey: "2025-10-16-5-12:00",
		Actor:     admin,
	})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_BlockedBookingRejected(t *testing.T) {
	first := booking("2025-10-15", 3, "08:00", "ana@unal.edu.co")
	blocked := booking("2025-10-16", 5, "12:00", "")
	blocked.Status = domain.StatusBlocked
	blocked.UserEmail = nil
	repo := &fakeRepo{records: map[string]*domain.Booking{first.ID: first, blocked.ID: blocked}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		FirstKey:  first.ID,
		SecondKey: blocked.ID,
		Actor:     admin,
	})

	assert.ErrorIs(t, err, ErrBlockedBooking)
	assert.Contains(t, repo.records, first.ID, "no mutation before the check")
}

func TestReconcile_RestoresOrphan(t *testing.T) {
	orphan := booking("2025-10-15", 3, "08:00", "ana@unal.edu.co")
	orphan.ID = domain.SwapTempKey("deadbeef")
	repo := &fakeRepo{records: map[string]*domain.Booking{orphan.ID: orphan}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	report, err := uc.Reconcile(context.Background(), admin)

	require.NoError(t, err)
	assert.Equal(t, []string{"2025-10-15-3-08:00"}, report.Restored)
	assert.Empty(t, report.Unresolved)

	restored := repo.records["2025-10-15-3-08:00"]
	require.NotNil(t, restored)
	assert.Equal(t, "ana@unal.edu.co", *restored.UserEmail)
}

func TestReconcile_OccupiedCanonicalKeyLeftUnresolved(t *testing.T) {
	orphan := booking("2025-10-15", 3, "08:00", "ana@unal.edu.co")
	orphan.ID = domain.SwapTempKey("deadbeef")
	occupant := booking("2025-10-15", 3, "08:00", "luis@unal.edu.co")
	repo := &fakeRepo{records: map[string]*domain.Booking{orphan.ID: orphan, occupant.ID: occupant}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	report, err := uc.Reconcile(context.Background(), admin)

	require.NoError(t, err)
	assert.Empty(t, report.Restored)
	assert.Equal(t, []string{orphan.ID}, report.Unresolved)
	assert.Contains(t, repo.records, orphan.ID, "orphan kept for the operator")
}

func TestReconcile_NothingToRepair(t *testing.T) {
	b := booking("2025-10-15", 3, "08:00", "ana@unal.edu.co")
	repo := &fakeRepo{records: map[string]*domain.Booking{b.ID: b}}
	uc := NewUseCase(repo, fakeTxManager{}, nopLogger{})

	report, err := uc.Reconcile(context.Background(), admin)

	require.NoError(t, err)
	assert.Empty(t, report.Restored)
	assert.Empty(t, report.Unresolved)
}

func TestReconcile_NonAdminRejected(t *testing.T) {
	uc := NewUseCase(&fakeRepo{records: map[string]*domain.Booking{}}, fakeTxManager{}, nopLogger{})

	_, err := uc.Reconcile(context.Background(), domain.Anonymous)

	assert.ErrorIs(t, err, ErrUnauthorized)
}
