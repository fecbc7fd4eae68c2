package reservation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StringingService/internal/domain"
	"github.com/m04kA/SMC-StringingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StringingService/pkg/psqlbuilder"
	"github.com/m04kA/SMC-StringingService/pkg/types"
)

const tableName = "reservations"

var reservationColumns = []string{
	"id",
	"user_id",
	"reservation_date",
	"preferred_time",
	"slot_span_count",
	"status",
	"racket_model",
	"string_name",
	"tension_lbs",
	"notes",
	"cancellation_reason",
	"cancelled_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями перетяжки
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование
// Если в контексте передана активная транзакция, использует её
func (r *Repository) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildInsertQuery(res)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return res, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(reservationColumns...).
		From(tableName).
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку, чтобы отмена не гонялась с другими изменениями
	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var res domain.Reservation
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&res.ID,
		&res.UserID,
		&res.Date,
		&res.PreferredTime,
		&res.SlotSpanCount,
		&res.Status,
		&res.RacketModel,
		&res.StringName,
		&res.TensionLbs,
		&res.Notes,
		&res.CancellationReason,
		&res.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan reservation: %v", ErrScanRow, err)
	}

	res.CreatedAt = createdAt.Time
	res.UpdatedAt = updatedAt.Time

	return &res, nil
}

// GetActiveByDate получает бронирования на дату, которые занимают слоты
// (без черновиков и отмененных). Возвращает только поля, нужные для подсчета занятости.
// Внутри транзакции строки блокируются (FOR UPDATE) для usecase создания бронирования.
func (r *Repository) GetActiveByDate(ctx context.Context, date types.Date) ([]domain.Reservation, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildActiveByDateQuery(date, dbmetrics.IsInTransaction(ctx))
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	for rows.Next() {
		res := domain.Reservation{Date: date}
		if err := rows.Scan(&res.ID, &res.PreferredTime, &res.SlotSpanCount, &res.Status); err != nil {
			return nil, fmt.Errorf("%w: GetActiveByDate - scan row: %v", ErrScanRow, err)
		}
		reservations = append(reservations, res)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetActiveByDate - rows error: %v", ErrScanRow, err)
	}

	return reservations, nil
}

// Cancel отменяет бронирование с указанием причины
func (r *Repository) Cancel(ctx context.Context, id int64, status domain.ReservationStatus, reason *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildCancelQuery(id, status, reason)
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrReservationNotFound
	}

	return nil
}

func buildInsertQuery(res *domain.Reservation) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableName).
		Columns(
			"user_id",
			"reservation_date",
			"preferred_time",
			"slot_span_count",
			"status",
			"racket_model",
			"string_name",
			"tension_lbs",
			"notes",
		).
		Values(
			res.UserID,
			res.Date,
			res.PreferredTime,
			res.SlotSpanCount,
			res.Status,
			res.RacketModel,
			res.StringName,
			res.TensionLbs,
			res.Notes,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
}

func buildActiveByDateQuery(date types.Date, forUpdate bool) (string, []interface{}, error) {
	excluded := make([]string, len(domain.ExcludedStatuses))
	for i, s := range domain.ExcludedStatuses {
		excluded[i] = string(s)
	}

	builder := psqlbuilder.Select("id", "preferred_time", "slot_span_count", "status").
		From(tableName).
		Where(squirrel.Eq{"reservation_date": date}).
		Where(squirrel.NotEq{"status": excluded}).
		OrderBy("preferred_time ASC", "id ASC")

	if forUpdate {
		builder = builder.Suffix("FOR UPDATE")
	}

	return builder.ToSql()
}

func buildCancelQuery(id int64, status domain.ReservationStatus, reason *string) (string, []interface{}, error) {
	return psqlbuilder.Update(tableName).
		Set("status", status).
		Set("cancellation_reason", reason).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}
