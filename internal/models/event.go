package models

import (
	"time"
)

// Known event types used for template theming
const (
	EventTypeWedding    = "wedding"
	EventTypeBirthday   = "birthday"
	EventTypeEngagement = "engagement"
	EventTypeAnnoprasan = "annoprasan"
)

type Event struct {
	ID               uint      `json:"id" gorm:"primaryKey"`
	EventName        string    `json:"event_name" gorm:"not null"`
	EventType        string    `json:"event_type" gorm:"not null"`
	EventDate        time.Time `json:"event_date" gorm:"not null"`
	HostName         string    `json:"host_name" gorm:"not null"`
	HostPhone        string    `json:"host_phone" gorm:"not null"`
	HostEmail        string    `json:"host_email,omitempty"`
	Location         string    `json:"location,omitempty"`
	Description      string    `json:"description,omitempty"`
	TemplateID       uint      `json:"template_id" gorm:"not null"`
	EventCode        string    `json:"event_code" gorm:"uniqueIndex;size:8;not null"`
	QRCodeURL        string    `json:"qr_code_url"`
	TemplateImageURL string    `json:"template_image_url"`
	IsActive         bool      `json:"is_active" gorm:"default:true"`
	TotalImages      int       `json:"total_images" gorm:"default:0"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type EventRequest struct {
	EventName   string    `json:"event_name" validate:"required,max=200"`
	EventType   string    `json:"event_type" validate:"required"`
	EventDate   time.Time `json:"event_date" validate:"required"`
	HostName    string    `json:"host_name" validate:"required,max=100"`
	HostPhone   string    `json:"host_phone" validate:"required,e164"`
	HostEmail   string    `json:"host_email" validate:"omitempty,email"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	TemplateID  uint      `json:"template_id" validate:"required"`
}

type UpdateEventRequest struct {
	EventName   *string    `json:"event_name" validate:"omitempty,max=200"`
	EventType   *string    `json:"event_type"`
	EventDate   *time.Time `json:"event_date"`
	HostName    *string    `json:"host_name" validate:"omitempty,max=100"`
	HostPhone   *string    `json:"host_phone" validate:"omitempty,e164"`
	HostEmail   *string    `json:"host_email" validate:"omitempty,email"`
	Location    *string    `json:"location"`
	Description *string    `json:"description"`
}
