package model

import (
	"time"
)

// CommentModel is the GORM-specific struct for the 'comments' table.
// Seq records insertion order; ID is the public UUID.
type CommentModel struct {
	Seq       int64     `gorm:"primaryKey;autoIncrement"`
	ID        string    `gorm:"type:varchar(36);not null;uniqueIndex"`
	BlogID    string    `gorm:"type:varchar(64);not null;index"`
	Author    string    `gorm:"type:varchar(255);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt string    `gorm:"type:varchar(19);not null"`
	StoredAt  time.Time `gorm:"autoCreateTime"`
}

// TableName explicitly sets the table name for GORM.
func (CommentModel) TableName() string {
	return "comments"
}
