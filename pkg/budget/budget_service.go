package budget

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type BudgetService interface {
	GetAll(ctx context.Context) ([]Budget, error)
	Create(ctx context.Context, budget Budget) (Budget, error)
	Update(ctx context.Context, budget Budget) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type BudgetServiceImpl struct {
	repo BudgetRepo
}

func NewBudgetServiceImpl(repo BudgetRepo) *BudgetServiceImpl {
	return &BudgetServiceImpl{repo: repo}
}

func (s *BudgetServiceImpl) GetAll(ctx context.Context) ([]Budget, error) {
	return s.repo.GetAll(ctx)
}

func (s *BudgetServiceImpl) Create(ctx context.Context, budget Budget) (Budget, error) {
	if budget.Category == "" {
		return Budget{}, ErrMissingCategory
	}
	budget.ID = uuid.NewString()
	budget.Month = NormalizeMonth(budget.Month)

	if err := s.repo.Store(ctx, budget); err != nil {
		return Budget{}, err
	}
	return budget, nil
}

func (s *BudgetServiceImpl) Update(ctx context.Context, budget Budget) (bool, error) {
	if budget.Category == "" {
		return false, ErrMissingCategory
	}
	budget.Month = NormalizeMonth(budget.Month)

	updated, err := s.repo.Update(ctx, budget)
	if err != nil {
		return false, err
	}
	if !updated {
		log.Warnf("budget not updated, probably because it does not exist (%s)", budget.ID)
		return false, fmt.Errorf("budget not updated")
	}
	return true, nil
}

func (s *BudgetServiceImpl) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if !deleted {
		log.Warnf("budget not deleted, probably because it does not exist (%s)", id)
		return false, fmt.Errorf("budget not deleted")
	}
	return true, nil
}
