package entities

import "time"

type Expense struct {
	ID          string `gorm:"primaryKey" json:"id"` // UUID
	Date        string `gorm:"index" json:"date"`    // YYYY-MM-DD
	Item        string `json:"item"`
	Amount      int    `json:"amount"` // yen
	Description string `json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
