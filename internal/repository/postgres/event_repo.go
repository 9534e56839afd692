package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"eventsportal/internal/domain"
)

const eventColumns = `id, name, date, description, place, created_at, updated_at`

// sortColumns whitelists ORDER BY columns.
var sortColumns = map[domain.SortField]string{
	domain.SortByName:      "LOWER(name)",
	domain.SortByDate:      "date",
	domain.SortByCreatedAt: "created_at",
}

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventStorage {
	return &eventRepository{
		DB: db,
	}
}

// buildListQuery renders the filters as a parameterised SELECT.
func buildListQuery(f domain.EventFilters) (string, []any) {
	f = f.WithDefaults()
	var (
		where []string
		args  []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(cond, len(args)))
	}
	if f.Name != "" {
		add(`name ILIKE $%d`, "%"+escapeLike(f.Name)+"%")
	}
	if f.Place != "" {
		add(`place ILIKE $%d`, "%"+escapeLike(f.Place)+"%")
	}
	if !f.StartDate.IsZero() {
		add(`date >= $%d`, f.StartDate.UTC())
	}
	if !f.EndDate.IsZero() {
		add(`date <= $%d`, f.EndDate.UTC())
	}

	var b strings.Builder
	b.WriteString(`SELECT ` + eventColumns + ` FROM events`)
	if len(where) > 0 {
		b.WriteString(` WHERE ` + strings.Join(where, ` AND `))
	}
	col, ok := sortColumns[f.SortBy]
	if !ok {
		col = sortColumns[domain.DefaultSortBy]
	}
	dir := "ASC"
	if f.SortOrder == domain.SortDesc {
		dir = "DESC"
	}
	b.WriteString(` ORDER BY ` + col + ` ` + dir + `, id ASC`)
	return b.String(), args
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (*domain.Event, error) {
	e := &domain.Event{}
	if err := s.Scan(&e.ID, &e.Name, &e.Date, &e.Description, &e.Place, &e.CreatedAt, &e.UpdatedAt); err != nil {
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context, filters domain.EventFilters) ([]domain.Event, error) {
	query, args := buildListQuery(filters)
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *e)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (name, date, description, place, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, e.Name, e.Date, e.Description, e.Place, e.CreatedAt, e.UpdatedAt).Scan(&e.ID)
}

func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	query := `
		UPDATE events
		SET name = $1, date = $2, description = $3, place = $4, updated_at = $5
		WHERE id = $6
	`
	res, err := r.DB.ExecContext(ctx, query, e.Name, e.Date, e.Description, e.Place, e.UpdatedAt, e.ID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *eventRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
