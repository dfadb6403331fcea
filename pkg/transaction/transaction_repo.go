package transaction

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type TransactionRepo interface {
	// Store stores a new Transaction to the database
	Store(ctx context.Context, transaction Transaction) error
	GetAll(ctx context.Context) ([]Transaction, error)
	FindById(ctx context.Context, id string) (Transaction, error)
	Update(ctx context.Context, transaction Transaction) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type TransactionRepoImpl struct {
	db *sql.DB
}

func NewTransactionRepo(db *sql.DB) *TransactionRepoImpl {
	return &TransactionRepoImpl{db: db}
}

func (r TransactionRepoImpl) Store(ctx context.Context, transaction Transaction) error {
	query := `INSERT INTO transactions (
                    id,
                    category,
                    amount,
                    date,
                    is_income,
                    notes
				) VALUES (?, ?, ?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		transaction.ID,
		transaction.Category,
		transaction.Amount.String(),
		transaction.Date.Format("2006-01-02"),
		transaction.IsIncome,
		transaction.Notes,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r TransactionRepoImpl) GetAll(ctx context.Context) ([]Transaction, error) {
	query := `SELECT id, category, amount, date, is_income, notes
				FROM transactions ORDER BY date, rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query transactions: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var transactions []Transaction
	for rows.Next() {
		transaction, err := scanTransaction(rows.Scan)
		if err != nil {
			log.Error(err)
			return nil, err
		}
		transactions = append(transactions, transaction)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return transactions, nil
}

func (r TransactionRepoImpl) FindById(ctx context.Context, id string) (Transaction, error) {
	query := `SELECT id, category, amount, date, is_income, notes
				FROM transactions WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	transaction, err := scanTransaction(row.Scan)
	if err != nil {
		if err == sql.ErrNoRows {
			return Transaction{}, ErrTransactionNotFound
		}
		log.Error(err)
		return Transaction{}, err
	}
	return transaction, nil
}

func (r TransactionRepoImpl) Update(ctx context.Context, transaction Transaction) (bool, error) {
	query := `UPDATE transactions SET
                  category = ?,
                  amount = ?,
                  date = ?,
                  is_income = ?,
                  notes = ?
              WHERE id = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		transaction.Category,
		transaction.Amount.String(),
		transaction.Date.Format("2006-01-02"),
		transaction.IsIncome,
		transaction.Notes,
		transaction.ID,
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func (r TransactionRepoImpl) Delete(ctx context.Context, id string) (bool, error) {
	query := "DELETE FROM transactions WHERE id = ?"
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()
	result, err := stmt.ExecContext(ctx, id)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return false, err
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		err := fmt.Errorf("could not get rows affected: %w", err)
		log.Error(err)
		return false, err
	}
	return rowsAffected == 1, nil
}

func scanTransaction(scan func(dest ...any) error) (Transaction, error) {
	var transaction Transaction
	var amountString, dateString string
	if err := scan(
		&transaction.ID,
		&transaction.Category,
		&amountString,
		&dateString,
		&transaction.IsIncome,
		&transaction.Notes,
	); err != nil {
		if err == sql.ErrNoRows {
			return Transaction{}, err
		}
		return Transaction{}, fmt.Errorf("could not scan transaction: %w", err)
	}
	amount, err := decimal.NewFromString(amountString)
	if err != nil {
		return Transaction{}, fmt.Errorf("could not parse amount: %w", err)
	}
	transaction.Amount = amount
	date, err := time.Parse("2006-01-02", dateString)
	if err != nil {
		return Transaction{}, fmt.Errorf("could not parse date: %w", err)
	}
	transaction.Date = date
	return transaction, nil
}
