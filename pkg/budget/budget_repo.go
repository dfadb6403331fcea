package budget

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type BudgetRepo interface {
	// Store stores a new Budget to the database
	Store(ctx context.Context, budget Budget) error
	// GetAll returns budgets in insertion order. Should duplicate
	// (category, month) rows exist, the first stored row wins downstream.
	GetAll(ctx context.Context) ([]Budget, error)
	Update(ctx context.Context, budget Budget) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type BudgetRepoImpl struct {
	db *sql.DB
}

func NewBudgetRepo(db *sql.DB) *BudgetRepoImpl {
	return &BudgetRepoImpl{db: db}
}

func (r BudgetRepoImpl) Store(ctx context.Context, budget Budget) error {
	query := `INSERT INTO budgets (
                    id,
                    category,
                    amount,
                    month
				) VALUES (?, ?, ?, ?)`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return err
	}
	defer stmt.Close()

	_, err = stmt.ExecContext(ctx,
		budget.ID,
		budget.Category,
		budget.Amount.String(),
		budget.Month.Format("2006-01-02"),
	)
	if err != nil {
		err := fmt.Errorf("could not execute query: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r BudgetRepoImpl) GetAll(ctx context.Context) ([]Budget, error) {
	query := `SELECT id, category, amount, month FROM budgets ORDER BY rowid`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not query budgets: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	var budgets []Budget
	for rows.Next() {
		var budget Budget
		var amountString, monthString string
		if err := rows.Scan(
			&budget.ID,
			&budget.Category,
			&amountString,
			&monthString,
		); err != nil {
			err := fmt.Errorf("could not scan budget: %w", err)
			log.Error(err)
			return nil, err
		}
		amount, err := decimal.NewFromString(amountString)
		if err != nil {
			err := fmt.Errorf("could not parse amount: %w", err)
			log.Error(err)
			return nil, err
		}
		budget.Amount = amount
		month, err := time.Parse("2006-01-02", monthString)
		if err != nil {
			err := fmt.Errorf("could not parse month: %w", err)
			log.Error(err)
			return nil, err
		}
		budget.Month = month
		budgets = append(budgets, budget)
	}

	if err := rows.Err(); err != nil {
		err := fmt.Errorf("error iterating over rows: %w", err)
		log.Error(err)
		return nil, err
	}

	return budgets, nil
}

func (r BudgetRepoImpl) Update(ctx context.Context, budget Budget) (bool, error) {
	query := `UPDATE budgets SET
                  category = ?,
                  amount = ?,
                  month = ?
              WHERE id = ?`
	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		err := fmt.Errorf("could not prepare query: %w", err)
		log.Error(err)
		return false, err
	}
	defer stmt.Close()

	result, err := stmt.ExecContext(ctx,
		budget.Category,
		budget.Amount.String(),
		budget.Month.Format("2006-01-02"),
		budget.ID,
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

func (r BudgetRepoImpl) Delete(ctx context.Context, id string) (bool, error) {
	query := "DELETE FROM budgets WHERE id = ?"
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
