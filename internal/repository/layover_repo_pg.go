package repository

import (
	"context"
	"errors"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type LayoverRepository interface {
	List(ctx context.Context) ([]domain.Layover, error)
	GetByID(ctx context.Context, id int64) (*domain.Layover, error)
	ListByFlight(ctx context.Context, flightNumber string) ([]domain.Layover, error)
	Create(ctx context.Context, l *domain.Layover) error
	Update(ctx context.Context, id int64, l *domain.Layover) (*domain.Layover, error)
	Delete(ctx context.Context, id int64) (*domain.Layover, error)
}

type PGLayoverRepository struct {
	db *pgxpool.Pool
}

func NewLayoverRepository(db *pgxpool.Pool) LayoverRepository {
	return &PGLayoverRepository{db: db}
}

const layoverColumns = `id_escala, n_vuelo, codigo_aeropuerto, fecha, hora_llegada, hora_salida, orden`

func (r *PGLayoverRepository) List(ctx context.Context) ([]domain.Layover, error) {
	rows, err := r.db.Query(ctx, `SELECT `+layoverColumns+` FROM escalas`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLayovers(rows)
}

func (r *PGLayoverRepository) GetByID(ctx context.Context, id int64) (*domain.Layover, error) {
	row := r.db.QueryRow(ctx, `SELECT `+layoverColumns+` FROM escalas WHERE id_escala=$1`, id)
	var l domain.Layover
	if err := scanLayover(row, &l); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &l, nil
}

func (r *PGLayoverRepository) ListByFlight(ctx context.Context, flightNumber string) ([]domain.Layover, error) {
	rows, err := r.db.Query(ctx, `SELECT `+layoverColumns+` FROM escalas WHERE n_vuelo=$1`, flightNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLayovers(rows)
}

func (r *PGLayoverRepository) Create(ctx context.Context, l *domain.Layover) error {
	return r.db.QueryRow(ctx, `INSERT INTO escalas (n_vuelo, codigo_aeropuerto, fecha, hora_llegada, hora_salida, orden)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id_escala`,
		l.FlightNumber, l.AirportCode, l.Date, l.ArrivalTime, l.DepartureTime, l.Position).Scan(&l.ID)
}

func (r *PGLayoverRepository) Update(ctx context.Context, id int64, l *domain.Layover) (*domain.Layover, error) {
	row := r.db.QueryRow(ctx, `UPDATE escalas SET n_vuelo=$1, codigo_aeropuerto=$2, fecha=$3, hora_llegada=$4, hora_salida=$5, orden=$6 WHERE id_escala=$7
		RETURNING `+layoverColumns,
		l.FlightNumber, l.AirportCode, l.Date, l.ArrivalTime, l.DepartureTime, l.Position, id)
	var updated domain.Layover
	if err := scanLayover(row, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *PGLayoverRepository) Delete(ctx context.Context, id int64) (*domain.Layover, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM escalas WHERE id_escala=$1 RETURNING `+layoverColumns, id)
	var deleted domain.Layover
	if err := scanLayover(row, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

func scanLayover(row pgx.Row, l *domain.Layover) error {
	return row.Scan(&l.ID, &l.FlightNumber, &l.AirportCode, &l.Date, &l.ArrivalTime, &l.DepartureTime, &l.Position)
}

func collectLayovers(rows pgx.Rows) ([]domain.Layover, error) {
	layovers := make([]domain.Layover, 0)
	for rows.Next() {
		var l domain.Layover
		if err := scanLayover(rows, &l); err != nil {
			return nil, err
		}
		layovers = append(layovers, l)
	}
	return layovers, rows.Err()
}

var _ LayoverRepository = (*PGLayoverRepository)(nil)
