package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/mattn/go-sqlite3"

	"bakusoq/internal/domain/entities"
	"bakusoq/internal/usecase/interfaces"
)

type estimateRow struct {
	ID        string  `db:"id"`
	Source    string  `db:"source"`
	AreaTsubo float64 `db:"area_tsubo"`
	Structure string  `db:"structure"`
	RoadWidth string  `db:"road_width"`
	SubTotal  int64   `db:"sub_total"`
	Tax       int64   `db:"tax"`
	Total     int64   `db:"total"`
	Params    string  `db:"params"`
	Result    string  `db:"result"`
	CreatedAt string  `db:"created_at"`
}

// EstimateSQLiteRepository stores the estimate log in a local SQLite file.
// Summary columns are duplicated out of the JSON documents for ad-hoc queries.
type EstimateSQLiteRepository struct {
	db *sqlx.DB
}

var _ interfaces.IEstimateRepository = (*EstimateSQLiteRepository)(nil)

func NewEstimateSQLiteRepository(db *sqlx.DB) *EstimateSQLiteRepository {
	return &EstimateSQLiteRepository{db: db}
}

func (r *EstimateSQLiteRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	params, err := json.Marshal(e.Params)
	if err != nil {
		return entities.Estimate{}, err
	}
	result, err := json.Marshal(e.Result)
	if err != nil {
		return entities.Estimate{}, err
	}

	row := estimateRow{
		ID:        e.ID,
		Source:    string(e.Source),
		AreaTsubo: e.Params.AreaTsubo,
		Structure: string(e.Params.Structure),
		RoadWidth: string(e.Params.RoadWidth),
		SubTotal:  e.Result.SubTotal,
		Tax:       e.Result.Tax,
		Total:     e.Result.Total,
		Params:    string(params),
		Result:    string(result),
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
	}

	const q = `
		INSERT INTO estimates (id, source, area_tsubo, structure, road_width, sub_total, tax, total, params, result, created_at)
		VALUES (:id, :source, :area_tsubo, :structure, :road_width, :sub_total, :tax, :total, :params, :result, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, q, row); err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return entities.Estimate{}, fmt.Errorf("%w: %s", ErrEstimateAlreadyRecorded, e.ID)
		}
		return entities.Estimate{}, fmt.Errorf("insert estimate %s: %w", e.ID, err)
	}
	return e, nil
}

func (r *EstimateSQLiteRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	var row estimateRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM estimates WHERE id = ?`, strings.TrimSpace(id))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Estimate{}, nil
	}
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("get estimate %s: %w", id, err)
	}

	e := entities.Estimate{
		ID:     row.ID,
		Source: entities.EstimateSource(row.Source),
	}
	if err := json.Unmarshal([]byte(row.Params), &e.Params); err != nil {
		return entities.Estimate{}, fmt.Errorf("decode params of %s: %w", id, err)
	}
	if err := json.Unmarshal([]byte(row.Result), &e.Result); err != nil {
		return entities.Estimate{}, fmt.Errorf("decode result of %s: %w", id, err)
	}
	e.CreatedAt, _ = time.Parse(time.RFC3339Nano, row.CreatedAt)
	return e, nil
}
