package model

import (
	"time"
)

// Media is a stored media file reference. Only the file name matters to the
// cart core; URL resolution happens in the media service.
type Media struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	FileName  string    `gorm:"not null" json:"file_name"`
	MimeType  string    `json:"mime_type"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Media) TableName() string {
	return "media"
}
