package repository

import (
	"context"
	"errors"

	"github.com/emolina91/reservavuelos/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TicketRepository interface {
	List(ctx context.Context) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	ListByFlight(ctx context.Context, flightNumber string) ([]domain.Ticket, error)
	Create(ctx context.Context, t *domain.Ticket) error
	Update(ctx context.Context, id int64, t *domain.Ticket) (*domain.Ticket, error)
	Delete(ctx context.Context, id int64) (*domain.Ticket, error)
}

type PGTicketRepository struct {
	db *pgxpool.Pool
}

func NewTicketRepository(db *pgxpool.Pool) TicketRepository {
	return &PGTicketRepository{db: db}
}

const ticketColumns = `id_boleto, pasaporte_pasajero, n_vuelo, fecha_compra, clase, precio, n_boleto`

func (r *PGTicketRepository) List(ctx context.Context) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, `SELECT `+ticketColumns+` FROM boletos`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTickets(rows)
}

func (r *PGTicketRepository) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	row := r.db.QueryRow(ctx, `SELECT `+ticketColumns+` FROM boletos WHERE id_boleto=$1`, id)
	var t domain.Ticket
	if err := scanTicket(row, &t); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *PGTicketRepository) ListByFlight(ctx context.Context, flightNumber string) ([]domain.Ticket, error) {
	rows, err := r.db.Query(ctx, `SELECT `+ticketColumns+` FROM boletos WHERE n_vuelo=$1`, flightNumber)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTickets(rows)
}

func (r *PGTicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	return r.db.QueryRow(ctx, `INSERT INTO boletos (pasaporte_pasajero, n_vuelo, fecha_compra, clase, precio, n_boleto)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id_boleto`,
		t.Passport, t.FlightNumber, t.PurchaseDate, t.Class, t.Price, t.TicketNumber).Scan(&t.ID)
}

func (r *PGTicketRepository) Update(ctx context.Context, id int64, t *domain.Ticket) (*domain.Ticket, error) {
	row := r.db.QueryRow(ctx, `UPDATE boletos SET pasaporte_pasajero=$1, n_vuelo=$2, fecha_compra=$3, clase=$4, precio=$5 WHERE id_boleto=$6
		RETURNING `+ticketColumns,
		t.Passport, t.FlightNumber, t.PurchaseDate, t.Class, t.Price, id)
	var updated domain.Ticket
	if err := scanTicket(row, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (r *PGTicketRepository) Delete(ctx context.Context, id int64) (*domain.Ticket, error) {
	row := r.db.QueryRow(ctx, `DELETE FROM boletos WHERE id_boleto=$1 RETURNING `+ticketColumns, id)
	var deleted domain.Ticket
	if err := scanTicket(row, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

func scanTicket(row pgx.Row, t *domain.Ticket) error {
	return row.Scan(&t.ID, &t.Passport, &t.FlightNumber, &t.PurchaseDate, &t.Class, &t.Price, &t.TicketNumber)
}

func collectTickets(rows pgx.Rows) ([]domain.Ticket, error) {
	tickets := make([]domain.Ticket, 0)
	for rows.Next() {
		var t domain.Ticket
		if err := scanTicket(rows, &t); err != nil {
			return nil, err
		}
		tickets = append(tickets, t)
	}
	return tickets, rows.Err()
}

var _ TicketRepository = (*PGTicketRepository)(nil)
