package budget

import (
	"context"
)

type StubBudgetRepo struct {
	order []string
	data  map[string]Budget
}

func NewStubBudgetRepo() *StubBudgetRepo {
	return &StubBudgetRepo{data: map[string]Budget{}}
}

func (s *StubBudgetRepo) Store(ctx context.Context, budget Budget) error {
	if _, ok := s.data[budget.ID]; !ok {
		s.order = append(s.order, budget.ID)
	}
	s.data[budget.ID] = budget
	return nil
}

func (s *StubBudgetRepo) GetAll(ctx context.Context) ([]Budget, error) {
	budgets := make([]Budget, 0, len(s.data))
	for _, id := range s.order {
		budgets = append(budgets, s.data[id])
	}
	return budgets, nil
}

func (s *StubBudgetRepo) Update(ctx context.Context, budget Budget) (bool, error) {
	if _, ok := s.data[budget.ID]; !ok {
		return false, nil
	}
	s.data[budget.ID] = budget
	return true, nil
}

func (s *StubBudgetRepo) Delete(ctx context.Context, id string) (bool, error) {
	if _, ok := s.data[id]; !ok {
		return false, nil
	}
	delete(s.data, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (s *StubBudgetRepo) Cleanup() {
	s.order = nil
	s.data = map[string]Budget{}
}
