package transaction

import (
	"context"
	"sort"
)

type StubTransactionRepo struct {
	data map[string]Transaction
}

func NewStubTransactionRepo() *StubTransactionRepo {
	return &StubTransactionRepo{data: map[string]Transaction{}}
}

func (s *StubTransactionRepo) Store(ctx context.Context, transaction Transaction) error {
	s.data[transaction.ID] = transaction
	return nil
}

func (s *StubTransactionRepo) GetAll(ctx context.Context) ([]Transaction, error) {
	transactions := make([]Transaction, 0, len(s.data))
	for _, transaction := range s.data {
		transactions = append(transactions, transaction)
	}
	sort.Slice(transactions, func(i, j int) bool {
		return transactions[i].Date.Before(transactions[j].Date)
	})
	return transactions, nil
}

func (s *StubTransactionRepo) FindById(ctx context.Context, id string) (Transaction, error) {
	transaction, ok := s.data[id]
	if !ok {
		return Transaction{}, ErrTransactionNotFound
	}
	return transaction, nil
}

func (s *StubTransactionRepo) Update(ctx context.Context, transaction Transaction) (bool, error) {
	if _, ok := s.data[transaction.ID]; !ok {
		return false, nil
	}
	s.data[transaction.ID] = transaction
	return true, nil
}

func (s *StubTransactionRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	return true, nil
}

func (s *StubTransactionRepo) Cleanup() {
	s.data = map[string]Transaction{}
}
