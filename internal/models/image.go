package models

import (
	"time"
)

type Image struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	FileName         string    `json:"file_name" gorm:"not null"`
	OriginalFileName string    `json:"original_file_name" gorm:"not null"`
	FileSize         int64     `json:"file_size" gorm:"not null"`
	MimeType         string    `json:"mime_type" gorm:"not null"`
	EventID          uint      `json:"event_id" gorm:"not null;index"`
	AlbumID          *uint     `json:"album_id" gorm:"index"`
	StorageKey       string    `json:"storage_key" gorm:"not null"`
	PublicURL        string    `json:"public_url" gorm:"not null"`
	ThumbnailURL     string    `json:"thumbnail_url,omitempty"`
	UploadedBy       string    `json:"uploaded_by,omitempty"`
	UploadedAt       time.Time `json:"uploaded_at" gorm:"autoCreateTime"`
}

type MoveImageRequest struct {
	AlbumID *uint `json:"album_id"`
}
