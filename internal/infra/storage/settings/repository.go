package settings

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-StringingService/internal/domain"
	"github.com/m04kA/SMC-StringingService/pkg/dbmetrics"
	"github.com/m04kA/SMC-StringingService/pkg/psqlbuilder"
)

const tableName = "scheduling_settings"

// Repository хранит документ настроек расписания (одна запись с фиксированным ключом)
type Repository struct {
	db  dbmetrics.DBExecutor
	key string
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db, key: domain.SettingsKey}
}

// Get возвращает сырой документ настроек как есть, без нормализации
func (r *Repository) Get(ctx context.Context) (domain.RawSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := buildGetQuery(r.key)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	var document []byte
	err = executor.QueryRowContext(ctx, query, args...).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan document: %v", ErrScanRow, err)
	}

	raw, err := decodeDocument(document)
	if err != nil {
		return nil, fmt.Errorf("%w: Get - decode document: %v", ErrInvalidDocument, err)
	}

	return raw, nil
}

// Upsert сохраняет документ настроек целиком
func (r *Repository) Upsert(ctx context.Context, raw domain.RawSettings) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	document, err := json.Marshal(raw)
	if err != nil {
		return fmt.Errorf("%w: Upsert - encode document: %v", ErrInvalidDocument, err)
	}

	query, args, err := buildUpsertQuery(r.key, document)
	if err != nil {
		return fmt.Errorf("%w: Upsert - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Upsert - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// decodeDocument пустой или null документ считается отсутствующим
func decodeDocument(document []byte) (domain.RawSettings, error) {
	if len(document) == 0 {
		return domain.RawSettings{}, nil
	}

	var raw domain.RawSettings
	if err := json.Unmarshal(document, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		raw = domain.RawSettings{}
	}
	return raw, nil
}

func buildGetQuery(key string) (string, []interface{}, error) {
	return psqlbuilder.Select("document").
		From(tableName).
		Where(squirrel.Eq{"key": key}).
		ToSql()
}

func buildUpsertQuery(key string, document []byte) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableName).
		Columns("key", "document", "updated_at").
		Values(key, string(document), squirrel.Expr("NOW()")).
		Suffix("ON CONFLICT (key) DO UPDATE SET document = EXCLUDED.document, updated_at = EXCLUDED.updated_at").
		ToSql()
}
