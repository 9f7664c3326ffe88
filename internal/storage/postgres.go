package storage

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jmoiron/sqlx"
	"github.com/knagata/partstrack/internal/entities"
	"github.com/lib/pq"
)

var (
	ErrNoRows             = errors.New("no rows")
	ErrAlreadyReceived    = errors.New("already received")
	ErrReceiptBeforeOrder = errors.New("receipt date precedes order date")
)

type Storage interface {
	CreateOrderedPart(context.Context, entities.OrderedPart) error
	GetOrderedPart(context.Context, string) (entities.OrderedPart, error)
	ListOrderedParts(context.Context) ([]entities.OrderedPart, error)
	DeleteOrderedPart(context.Context, string) error

	ReceiveOrderedPart(context.Context, string, time.Time) error
	ListReceivedParts(context.Context) ([]entities.ReceivedPart, error)
	DeleteReceivedPart(context.Context, string) error

	Now(context.Context) (time.Time, error)
}

type PostgresStorage struct {
	db *sqlx.DB
}

func NewPostgresStorage(db *sqlx.DB) (Storage, error) {
	storage := &PostgresStorage{db: db}

	err := storage.runMigrations(context.Background())
	if err != nil {
		return nil, err
	}

	return storage, nil
}

func (s *PostgresStorage) CreateOrderedPart(ctx context.Context, part entities.OrderedPart) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO ordered_parts (
			order_number, part_number, part_name, quantity,
			order_date, supplier_name, data_location, remarks, ordered_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);`,
		part.OrderNumber, part.PartNumber, part.PartName, part.Quantity,
		part.OrderDate, part.SupplierName, part.DataLocation, part.Remarks, part.OrderedBy,
	)

	return err
}

func (s *PostgresStorage) GetOrderedPart(ctx context.Context, orderNumber string) (entities.OrderedPart, error) {
	var part entities.OrderedPart

	row := s.db.QueryRowxContext(ctx, "SELECT * FROM ordered_parts WHERE order_number = $1;", orderNumber)

	if err := row.StructScan(&part); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return part, ErrNoRows
		}

		return part, err
	}

	return part, nil
}

func (s *PostgresStorage) ListOrderedParts(ctx context.Context) ([]entities.OrderedPart, error) {
	var parts []entities.OrderedPart

	err := s.db.SelectContext(ctx, &parts, "SELECT * FROM ordered_parts ORDER BY created_at ASC;")
	if err != nil {
		return nil, err
	}

	return parts, nil
}

func (s *PostgresStorage) DeleteOrderedPart(ctx context.Context, orderNumber string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM ordered_parts WHERE order_number = $1;", orderNumber)
	return err
}

// ReceiveOrderedPart moves one order into received_parts. The whole
// transition runs in a single transaction: the ordered row is locked for the
// duration, so two receipts for the same order number serialize, and the
// unique constraint on received_parts.order_number catches anything that
// still slips past the duplicate check.
func (s *PostgresStorage) ReceiveOrderedPart(ctx context.Context, orderNumber string, receivedDate time.Time) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}

	defer tx.Rollback()

	var part entities.OrderedPart

	row := tx.QueryRowxContext(
		ctx,
		"SELECT * FROM ordered_parts WHERE order_number = $1 FOR UPDATE;",
		orderNumber,
	)

	if err := row.StructScan(&part); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNoRows
		}

		return err
	}

	if receivedDate.Before(part.OrderDate) {
		return ErrReceiptBeforeOrder
	}

	var alreadyReceived bool
	row = tx.QueryRowxContext(
		ctx,
		"SELECT EXISTS (SELECT 1 FROM received_parts WHERE order_number = $1);",
		orderNumber,
	)

	if err := row.Scan(&alreadyReceived); err != nil {
		return err
	}

	if alreadyReceived {
		return ErrAlreadyReceived
	}

	if _, err := tx.ExecContext(
		ctx,
		`INSERT INTO received_parts (
			order_number, part_number, part_name, quantity,
			order_date, supplier_name, data_location, remarks,
			received_date, ordered_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);`,
		part.OrderNumber, part.PartNumber, part.PartName, part.Quantity,
		part.OrderDate, part.SupplierName, part.DataLocation, part.Remarks,
		receivedDate, part.OrderedBy,
	); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pgerrcode.IsIntegrityConstraintViolation(string(pqErr.Code)) {
			return ErrAlreadyReceived
		}

		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM ordered_parts WHERE order_number = $1;", orderNumber); err != nil {
		return err
	}

	return tx.Commit()
}

func (s *PostgresStorage) ListReceivedParts(ctx context.Context) ([]entities.ReceivedPart, error) {
	var parts []entities.ReceivedPart

	err := s.db.SelectContext(ctx, &parts, "SELECT * FROM received_parts ORDER BY created_at ASC;")
	if err != nil {
		return nil, err
	}

	return parts, nil
}

func (s *PostgresStorage) DeleteReceivedPart(ctx context.Context, orderNumber string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM received_parts WHERE order_number = $1;", orderNumber)
	return err
}

func (s *PostgresStorage) Now(ctx context.Context) (time.Time, error) {
	var now time.Time

	row := s.db.QueryRowxContext(ctx, "SELECT NOW();")

	if err := row.Scan(&now); err != nil {
		return time.Time{}, err
	}

	return now, nil
}

func (s *PostgresStorage) runMigrations(ctx context.Context) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return err
	}

	defer tx.Rollback()

	_, err = tx.ExecContext(
		ctx,
		`
		CREATE TABLE IF NOT EXISTS ordered_parts(
			order_number TEXT PRIMARY KEY,
			part_number TEXT NOT NULL,
			part_name TEXT NOT NULL,
			quantity TEXT NOT NULL,
			order_date DATE NOT NULL,
			supplier_name TEXT NOT NULL,
			data_location TEXT NOT NULL,
			remarks TEXT NOT NULL DEFAULT '',
			ordered_by TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		`,
	)

	if err != nil {
		return err
	}

	_, err = tx.ExecContext(
		ctx,
		`
		CREATE TABLE IF NOT EXISTS received_parts(
			order_number TEXT PRIMARY KEY,
			part_number TEXT NOT NULL,
			part_name TEXT NOT NULL,
			quantity TEXT NOT NULL,
			order_date DATE NOT NULL,
			supplier_name TEXT NOT NULL,
			data_location TEXT NOT NULL,
			remarks TEXT NOT NULL DEFAULT '',
			received_date DATE NOT NULL,
			ordered_by TEXT NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
		`,
	)

	if err != nil {
		return err
	}

	return tx.Commit()
}
