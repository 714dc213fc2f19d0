package models

import (
    "time"
)

type User struct {
    ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
    SessionID *string   `gorm:"type:uuid;uniqueIndex" json:"-"` // opaque credential, nil until a session is issued
    Name      string    `gorm:"not null" json:"name"`
    Email     string    `gorm:"uniqueIndex;not null" json:"email"`
    CreatedAt time.Time `json:"created_at"`
}
