package transaction

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionServiceImpl_Create(t *testing.T) {
	repo := NewStubTransactionRepo()
	defer repo.Cleanup()
	service := NewTransactionServiceImpl(repo)

	created, err := service.Create(context.Background(), Transaction{
		Category: "Groceries",
		Amount:   decimal.NewFromInt(42),
		Date:     time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)

	stored, err := repo.FindById(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, stored)
}

func TestTransactionServiceImpl_Create_Invalid(t *testing.T) {
	repo := NewStubTransactionRepo()
	defer repo.Cleanup()
	service := NewTransactionServiceImpl(repo)
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		transaction Transaction
		wantErr     error
	}{
		{
			name:        "Zero amount",
			transaction: Transaction{Category: "Groceries", Amount: decimal.Zero, Date: date},
			wantErr:     ErrInvalidAmount,
		},
		{
			name:        "Negative amount",
			transaction: Transaction{Category: "Groceries", Amount: decimal.NewFromInt(-5), Date: date},
			wantErr:     ErrInvalidAmount,
		},
		{
			name:        "Empty category",
			transaction: Transaction{Amount: decimal.NewFromInt(10), Date: date},
			wantErr:     ErrMissingCategory,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.Create(context.Background(), tt.transaction)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransactionServiceImpl_Delete_NotFound(t *testing.T) {
	repo := NewStubTransactionRepo()
	defer repo.Cleanup()
	service := NewTransactionServiceImpl(repo)

	ok, err := service.Delete(context.Background(), "missing")

	assert.False(t, ok)
	assert.Error(t, err)
}

func TestTransaction_InMonth(t *testing.T) {
	transaction := Transaction{
		Category: "Groceries",
		Amount:   decimal.NewFromInt(10),
		Date:     time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}

	assert.True(t, transaction.InMonth(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, transaction.InMonth(time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	assert.False(t, transaction.InMonth(time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)))
}
