package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides the id, timestamps and soft delete column shared by every model
type BaseModel struct {
	ID        string         `gorm:"type:varchar(64);primaryKey" json:"id"`
	CreatedAt time.Time      `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time      `gorm:"not null" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at"`
}

// ensureID assigns a prefixed id when none is set
func (m *BaseModel) ensureID(prefix string) {
	if m.ID == "" {
		m.ID = GenerateID(prefix)
	}
}

// GenerateID returns a time-ordered id such as "prod_0190A3B2C4D5..."
func GenerateID(prefix string) string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return prefix + "_" + strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))
}
