package repositoryImp

import (
	"gorm.io/gorm"

	"agriportal/entities"
	"agriportal/pkg/expense/repository"
)

type expenseRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.ExpenseRepository { return &expenseRepo{db} }

func (r *expenseRepo) Create(e *entities.Expense) error { return r.db.Create(e).Error }

func (r *expenseRepo) List() ([]entities.Expense, error) {
	var out []entities.Expense
	err := r.db.Order("date DESC, created_at DESC").Find(&out).Error
	return out, err
}
