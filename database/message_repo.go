package database

import (
	"time"

	"github.com/rpupo63/portfolio-backend/models"
	"gorm.io/gorm"
)

type MessageRepo struct {
	db *gorm.DB
}

func NewMessageRepo(db *gorm.DB) *MessageRepo {
	return &MessageRepo{db}
}

// Add persists a new message, assigning its creation timestamp. GORM fills the
// generated id back into the struct after the insert.
func (r *MessageRepo) Add(message *models.Message) error {
	message.CreatedAt = time.Now().UTC()
	return r.db.Create(message).Error
}
