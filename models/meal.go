package models

import (
    "time"
)

// One logged meal. Date is epoch milliseconds so rows stay compatible
// with data already stored in the meals table.
type Meal struct {
    ID          string    `gorm:"type:uuid;primaryKey" json:"id"`
    UserID      string    `gorm:"type:uuid;not null;index" json:"user_id"` // FK → users.id
    Name        string    `gorm:"not null" json:"name"`
    Description string    `json:"description"`
    IsOnDiet    bool      `gorm:"not null" json:"is_on_diet"`
    Date        int64     `gorm:"not null" json:"date"` // epoch millis
    CreatedAt   time.Time `json:"created_at"`
}
