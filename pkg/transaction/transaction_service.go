package transaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type TransactionService interface {
	GetAll(ctx context.Context) ([]Transaction, error)
	Create(ctx context.Context, transaction Transaction) (Transaction, error)
	Update(ctx context.Context, transaction Transaction) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type TransactionServiceImpl struct {
	repo TransactionRepo
}

func NewTransactionServiceImpl(repo TransactionRepo) *TransactionServiceImpl {
	return &TransactionServiceImpl{repo: repo}
}

func (s *TransactionServiceImpl) GetAll(ctx context.Context) ([]Transaction, error) {
	return s.repo.GetAll(ctx)
}

func (s *TransactionServiceImpl) Create(ctx context.Context, transaction Transaction) (Transaction, error) {
	if err := transaction.Validate(); err != nil {
		return Transaction{}, err
	}
	transaction.ID = uuid.NewString()

	if err := s.repo.Store(ctx, transaction); err != nil {
		return Transaction{}, err
	}
	return transaction, nil
}

func (s *TransactionServiceImpl) Update(ctx context.Context, transaction Transaction) (bool, error) {
	if err := transaction.Validate(); err != nil {
		return false, err
	}

	updated, err := s.repo.Update(ctx, transaction)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("transaction not updated, probably because it does not exist (%s)", transaction.ID)
		return false, fmt.Errorf("transaction not updated")
	}
	return true, nil
}

func (s *TransactionServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("transaction not deleted, probably because it does not exist (%s)", id)
		return false, fmt.Errorf("transaction not deleted")
	}
	return true, nil
}
