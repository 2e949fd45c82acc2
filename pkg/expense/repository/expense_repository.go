package repository

import "agriportal/entities"

type ExpenseRepository interface {
	Create(e *entities.Expense) error
	// List returns every expense, newest date first.
	List() ([]entities.Expense, error)
}
