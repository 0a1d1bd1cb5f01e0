package repository

import (
	"context"
	"errors"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type CheckInRepository interface {
	List(ctx context.Context) ([]domain.CheckIn, error)
	GetByTicketID(ctx context.Context, ticketID int64) (*domain.CheckIn, error)
	ListByFlight(ctx context.Context, flightNumber string) ([]domain.CheckIn, error)
	Create(ctx context.Context, c *domain.CheckIn) error
	Update(ctx context.Context, ticketID int64, c *domain.CheckIn) (*domain.CheckIn, error)
	Delete(ctx context.Context, ticketID int64) (*domain.CheckIn, error)
}

type PGCheckInRepository struct {
	db *pgxpool.Pool
}

func NewCheckInRepository(db *pgxpool.Pool) CheckInRepository {
	return &PGCheckInRepository{db: db}
}

const checkinColumns = `id_boleto, pasaporte_pasajero, n_vuelo, fecha, hora, estado`

func (r *PGCheckInRepository) List(ctx context.Context) ([]domain.CheckIn, error) {
	rows, err := r.db.Query(ctx, `SELECT `+checkinColumns+` FROM checkins`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCheckIns(rows)
}

func (r *PGCheckInRepository) GetByTicketID(ctx context.Context, ticketID int64) (*domain.CheckIn, error) {
	row := r.db.QueryRow(ctx, `SELECT `+checkinColumns+` FROM checkins WHERE id_boleto=$1`, ticketID)
	var c domain.CheckIn
	if err := scanCheckIn(row, &c); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (r *PGCheckInRepository) ListByFlight(ctx context.Context, flightNumber string) ([]domain.CheckIn, error) {
	rows, err := r.db.Query(ctx, `SELECT `+checkinColumns+` FROM checkins WHERE n_vuelo=$1`, flightNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCheckIns(rows)
}

func (r *PGCheckInRepository) Create(ctx context.Context, c *domain.CheckIn) error {
	_, err := r.db.Exec(ctx, `INSERT INTO checkins (id_boleto, pasaporte_pasajero, n_vuelo, fecha, hora, estado) VALUES ($1, $2, $3, $4, $5, $6)`,
		c.TicketID, c.Passport, c.FlightNumber, c.Date, c.Time, c.Status)
	return err
}

func (r *PGCheckInRepository) Update(ctx context.Context, ticketID int64, c *domain.CheckIn) (*domain.CheckIn, error) {
	row := r.db.QueryRow(ctx, `UPDATE checkins SET pasaporte_pasajero=$1, n_vuelo=$2, fecha=$3, hora=$4, estado=$5 WHERE id_boleto=$6
		RETURNING `+checkinColumns,
		c.Passport, c.FlightNumber, c.Date, c.Time, c.Status, ticketID)
	var updated domain.CheckIn
	if err := scanCheckIn(row, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *PGCheckInRepository) Delete(ctx context.Context, ticketID int64) (*domain.CheckIn, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM checkins WHERE id_boleto=$1 RETURNING `+checkinColumns, ticketID)
	var deleted domain.CheckIn
	if err := scanCheckIn(row, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

func scanCheckIn(row pgx.Row, c *domain.CheckIn) error {
	return row.Scan(&c.TicketID, &c.Passport, &c.FlightNumber, &c.Date, &c.Time, &c.Status)
}

func collectCheckIns(rows pgx.Rows) ([]domain.CheckIn, error) {
	checkins := make([]domain.CheckIn, 0)
	for rows.Next() {
		var c domain.CheckIn
		if err := scanCheckIn(rows, &c); err != nil {
			return nil, err
		}
		checkins = append(checkins, c)
	}
	return checkins, rows.Err()
}

var _ CheckInRepository = (*PGCheckInRepository)(nil)
