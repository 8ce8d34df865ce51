package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/AdrianLinares/microreserva/internal/domain"
	"github.com/AdrianLinares/microreserva/pkg/dbmetrics"
	"github.com/AdrianLinares/microreserva/pkg/psqlbuilder"
)

// uniqueViolation код ошибки postgres для нарушения уникальности
const uniqueViolation = "23505"

var bookingColumns = []string{
	"id",
	"equipment_id",
	"date",
	"time_slot_id",
	"status",
	"user_name",
	"user_email",
	"user_group",
	"blocked_reason",
	"block_type",
	"block_start_date",
	"block_end_date",
	"timestamp",
}

// Repository репозиторий для работы с записями слотов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByKey получает запись по каноническому ключу слота
func (r *Repository) GetByKey(ctx context.Context, key string) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": key}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByKey - scan booking: %v", ErrScanRow, err)
	}
	return b, nil
}

// List возвращает все записи, новые первыми
func (r *Repository) List(ctx context.Context) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		OrderBy("timestamp DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// UpsertIfAvailableOrAbsent записывает запись, если ключ свободен либо занят
// записью со статусом available. Проверка и запись выполняются одним
// условным оператором, без read-then-write между двумя вызовами.
func (r *Repository) UpsertIfAvailableOrAbsent(ctx context.Context, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := insertBuilder(b).
		Suffix(conflictUpdateClause+" WHERE bookings.status = ?", string(domain.StatusAvailable)).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertIfAvailableOrAbsent - build upsert query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpsertIfAvailableOrAbsent - execute upsert: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpsertIfAvailableOrAbsent - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		// Конфликт с живой записью - условие WHERE не пропустило UPDATE.
		return ErrSlotTaken
	}
	return nil
}

// ForceUpsert записывает запись поверх любой существующей. Используется
// только административным созданием блокировок.
func (r *Repository) ForceUpsert(ctx context.Context, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := insertBuilder(b).
		Suffix(conflictUpdateClause).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ForceUpsert - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: ForceUpsert - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// UpdateFields частично обновляет запись по ключу
func (r *Repository) UpdateFields(ctx context.Context, key string, fields UpdateFields) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	update := psqlbuilder.Update("bookings").Where(squirrel.Eq{"id": key})
	assigned := false

	set := func(column string, value interface{}) {
		update = update.Set(column, value)
		assigned = true
	}

	if fields.Status != nil {
		set("status", *fields.Status)
	}
	if fields.Date != nil {
		set("date", *fields.Date)
	}
	if fields.EquipmentID != nil {
		set("equipment_id", *fields.EquipmentID)
	}
	if fields.TimeSlotID != nil {
		set("time_slot_id", *fields.TimeSlotID)
	}
	if fields.UserName != nil {
		set("user_name", *fields.UserName)
	}
	if fields.UserEmail != nil {
		set("user_email", *fields.UserEmail)
	}
	if fields.UserGroup != nil {
		set("user_group", *fields.UserGroup)
	}
	if fields.BlockedReason != nil {
		set("blocked_reason", *fields.BlockedReason)
	}
	if fields.BlockType != nil {
		set("block_type", *fields.BlockType)
	}
	if fields.BlockStartDate != nil {
		set("block_start_date", *fields.BlockStartDate)
	}
	if fields.BlockEndDate != nil {
		set("block_end_date", *fields.BlockEndDate)
	}

	if !assigned {
		return ErrNoFieldsToUpdate
	}

	query, args, err := update.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateFields - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateFields - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateFields - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// Rename атомарно переписывает ключ и координаты записи одним UPDATE
// первичного ключа: между «старым» и «новым» ключом нет промежуточного
// состояния. Возвращает ErrSlotTaken, если новый ключ уже занят.
func (r *Repository) Rename(ctx context.Context, oldKey string, b *domain.Booking) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("id", b.ID).
		Set("date", b.Date).
		Set("equipment_id", b.EquipmentID).
		Set("time_slot_id", b.TimeSlotID).
		Where(squirrel.Eq{"id": oldKey}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Rename - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSlotTaken
		}
		return fmt.Errorf("%w: Rename - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Rename - get rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBookingNotFound
	}
	return nil
}

// Delete удаляет запись по ключу. Отсутствие записи не является ошибкой:
// удаление и есть перевод слота в available, операция идемпотентна.
func (r *Repository) Delete(ctx context.Context, key string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("bookings").
		Where(squirrel.Eq{"id": key}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}
	return nil
}

// CountActiveByEmail считает активные (pending, approved) записи пользователя
func (r *Repository) CountActiveByEmail(ctx context.Context, email string) (int, error) {
	return r.count(ctx, "CountActiveByEmail", squirrel.And{
		squirrel.Eq{"user_email": email},
		squirrel.Eq{"status": []string{string(domain.StatusPending), string(domain.StatusApproved)}},
	})
}

// CountRecentByEmail считает записи пользователя с timestamp позже sinceMillis
func (r *Repository) CountRecentByEmail(ctx context.Context, email string, sinceMillis int64) (int, error) {
	return r.count(ctx, "CountRecentByEmail", squirrel.And{
		squirrel.Eq{"user_email": email},
		squirrel.Gt{"timestamp": sinceMillis},
	})
}

func (r *Repository) count(ctx context.Context, method string, pred interface{}) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(pred).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %s - build count query: %v", ErrBuildQuery, method, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: %s - scan count: %v", ErrScanRow, method, err)
	}
	return count, nil
}

// FindIndefiniteBlocks возвращает бессрочные блокировки, действующие для
// указанного оборудования на указанную дату: блокировка на всё оборудование
// (equipment_id = 0) или на данный инструмент, с датой начала не позже date.
// Сравнение дат строковое, формат YYYY-MM-DD сортируется лексикографически.
func (r *Repository) FindIndefiniteBlocks(ctx context.Context, equipmentID int, date string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"block_type": string(domain.BlockIndefinite)}).
		Where(squirrel.Eq{"status": string(domain.StatusBlocked)}).
		Where(squirrel.Or{
			squirrel.Eq{"equipment_id": domain.EquipmentAll},
			squirrel.Eq{"equipment_id": equipmentID},
		}).
		Where(squirrel.LtOrEq{"block_start_date": date}).
		OrderBy("block_start_date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindIndefiniteBlocks - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindIndefiniteBlocks - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// FindOccupiedKeys возвращает записи по ключам keys, исключая excludeKeys.
// Используется проверкой коллизий при обмене слотов.
func (r *Repository) FindOccupiedKeys(ctx context.Context, keys, excludeKeys []string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": keys})
	if len(excludeKeys) > 0 {
		builder = builder.Where(squirrel.NotEq{"id": excludeKeys})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOccupiedKeys - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindOccupiedKeys - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// FindByKeyPrefix возвращает записи, чей ключ начинается с prefix.
// Используется поиском осиротевших временных ключей обмена.
func (r *Repository) FindByKeyPrefix(ctx context.Context, prefix string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Like{"id": prefix + "%"}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByKeyPrefix - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: FindByKeyPrefix - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

const conflictUpdateClause = `ON CONFLICT (id) DO UPDATE SET
	equipment_id = EXCLUDED.equipment_id,
	date = EXCLUDED.date,
	time_slot_id = EXCLUDED.time_slot_id,
	status = EXCLUDED.status,
	user_name = EXCLUDED.user_name,
	user_email = EXCLUDED.user_email,
	user_group = EXCLUDED.user_group,
	blocked_reason = EXCLUDED.blocked_reason,
	block_type = EXCLUDED.block_type,
	block_start_date = EXCLUDED.block_start_date,
	block_end_date = EXCLUDED.block_end_date,
	timestamp = EXCLUDED.timestamp`

func insertBuilder(b *domain.Booking) squirrel.InsertBuilder {
	return psqlbuilder.Insert("bookings").
		Columns(bookingColumns...).
		Values(
			b.ID,
			b.EquipmentID,
			b.Date,
			b.TimeSlotID,
			b.Status,
			b.UserName,
			b.UserEmail,
			b.UserGroup,
			b.BlockedReason,
			b.BlockType,
			b.BlockStartDate,
			b.BlockEndDate,
			b.Timestamp,
		)
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var b domain.Booking
	err := row.Scan(
		&b.ID,
		&b.EquipmentID,
		&b.Date,
		&b.TimeSlotID,
		&b.Status,
		&b.UserName,
		&b.UserEmail,
		&b.UserGroup,
		&b.BlockedReason,
		&b.BlockType,
		&b.BlockStartDate,
		&b.BlockEndDate,
		&b.Timestamp,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}
	return bookings, nil
}
