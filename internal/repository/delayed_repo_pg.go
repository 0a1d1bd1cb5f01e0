package repository

import (
	"context"
	"errors"
	"time"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DelayedPassengerRepository interface {
	List(ctx context.Context) ([]domain.DelayedPassenger, error)
	ListWithTickets(ctx context.Context) ([]domain.DelayedPassengerTicket, error)
	GetByID(ctx context.Context, id int64) (*domain.DelayedPassenger, error)
	Create(ctx context.Context, d *domain.DelayedPassenger) error
	Update(ctx context.Context, id int64, d *domain.DelayedPassenger) (*domain.DelayedPassenger, error)
	Delete(ctx context.Context, id int64) (*domain.DelayedPassenger, error)
	// RegisterMissedCheckIns inserts a delayed-passenger row for every
	// check-in still pending after its flight date, skipping tickets
	// already registered, and returns the created rows.
	RegisterMissedCheckIns(ctx context.Context, deadline time.Time, reason string) ([]domain.DelayedPassenger, error)
}

type PGDelayedPassengerRepository struct {
	db *pgxpool.Pool
}

func NewDelayedPassengerRepository(db *pgxpool.Pool) DelayedPassengerRepository {
	return &PGDelayedPassengerRepository{db: db}
}

const delayedColumns = `id_atrasado, pasaporte_pasajero, id_boleto, motivo, fecha_registro, hora_registro`

func (r *PGDelayedPassengerRepository) List(ctx context.Context) ([]domain.DelayedPassenger, error) {
	rows, err := r.db.Query(ctx, `SELECT `+delayedColumns+` FROM pasajeros_atrasados`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDelayed(rows)
}

func (r *PGDelayedPassengerRepository) ListWithTickets(ctx context.Context) ([]domain.DelayedPassengerTicket, error) {
	rows, err := r.db.Query(ctx, `SELECT pa.id_atrasado, pa.pasaporte_pasajero, pa.id_boleto, pa.motivo, pa.fecha_registro, pa.hora_registro,
			b.id_boleto, b.pasaporte_pasajero, b.n_vuelo, b.fecha_compra, b.clase, b.precio, b.n_boleto
		FROM pasajeros_atrasados pa
		JOIN boletos b ON b.id_boleto = pa.id_boleto`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	joined := make([]domain.DelayedPassengerTicket, 0)
	for rows.Next() {
		var d domain.DelayedPassengerTicket
		if err := rows.Scan(&d.ID, &d.Passport, &d.TicketID, &d.Reason, &d.RegistrationDate, &d.RegistrationTime,
			&d.Ticket.ID, &d.Ticket.Passport, &d.Ticket.FlightNumber, &d.Ticket.PurchaseDate, &d.Ticket.Class, &d.Ticket.Price, &d.Ticket.TicketNumber); err != nil {
			return nil, err
		}
		joined = append(joined, d)
	}
	return joined, rows.Err()
}

func (r *PGDelayedPassengerRepository) GetByID(ctx context.Context, id int64) (*domain.DelayedPassenger, error) {
	row := r.db.QueryRow(ctx, `SELECT `+delayedColumns+` FROM pasajeros_atrasados WHERE id_atrasado=$1`, id)
	var d domain.DelayedPassenger
	if err := scanDelayed(row, &d); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &d, nil
}

func (r *PGDelayedPassengerRepository) Create(ctx context.Context, d *domain.DelayedPassenger) error {
	return r.db.QueryRow(ctx, `INSERT INTO pasajeros_atrasados (pasaporte_pasajero, id_boleto, motivo, fecha_registro, hora_registro)
		VALUES ($1, $2, $3, $4, $5) RETURNING id_atrasado`,
		d.Passport, d.TicketID, d.Reason, d.RegistrationDate, d.RegistrationTime).Scan(&d.ID)
}

func (r *PGDelayedPassengerRepository) Update(ctx context.Context, id int64, d *domain.DelayedPassenger) (*domain.DelayedPassenger, error) {
	row := r.db.QueryRow(ctx, `UPDATE pasajeros_atrasados SET pasaporte_pasajero=$1, id_boleto=$2, motivo=$3, fecha_registro=$4, hora_registro=$5 WHERE id_atrasado=$6
		RETURNING `+delayedColumns,
		d.Passport, d.TicketID, d.Reason, d.RegistrationDate, d.RegistrationTime, id)
	var updated domain.DelayedPassenger
	if err := scanDelayed(row, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *PGDelayedPassengerRepository) Delete(ctx context.Context, id int64) (*domain.DelayedPassenger, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM pasajeros_atrasados WHERE id_atrasado=$1 RETURNING `+delayedColumns, id)
	var deleted domain.DelayedPassenger
	if err := scanDelayed(row, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

func (r *PGDelayedPassengerRepository) RegisterMissedCheckIns(ctx context.Context, deadline time.Time, reason string) ([]domain.DelayedPassenger, error) {
	rows, err := r.db.Query(ctx, `INSERT INTO pasajeros_atrasados (pasaporte_pasajero, id_boleto, motivo, fecha_registro, hora_registro)
		SELECT c.pasaporte_pasajero, c.id_boleto, $1, date_trunc('day', $2::timestamp), $2
		FROM checkins c
		JOIN vuelos v ON v.n_vuelo = c.n_vuelo
		WHERE c.estado = $3
		  AND v.fecha < $2
		  AND NOT EXISTS (SELECT 1 FROM pasajeros_atrasados pa WHERE pa.id_boleto = c.id_boleto)
		RETURNING `+delayedColumns,
		reason, deadline, domain.CheckInStatusPending)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectDelayed(rows)
}

func scanDelayed(row pgx.Row, d *domain.DelayedPassenger) error {
	return row.Scan(&d.ID, &d.Passport, &d.TicketID, &d.Reason, &d.RegistrationDate, &d.RegistrationTime)
}

func collectDelayed(rows pgx.Rows) ([]domain.DelayedPassenger, error) {
	delayed := make([]domain.DelayedPassenger, 0)
	for rows.Next() {
		var d domain.DelayedPassenger
		if err := scanDelayed(rows, &d); err != nil {
			return nil, err
		}
		delayed = append(delayed, d)
	}
	return delayed, rows.Err()
}

var _ DelayedPassengerRepository = (*PGDelayedPassengerRepository)(nil)
