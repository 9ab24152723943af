package models

import (
	"time"
)

type Template struct {
	ID           uint                   `json:"id" gorm:"primaryKey"`
	Name         string                 `json:"name" gorm:"not null"`
	EventType    string                 `json:"event_type" gorm:"not null;index"`
	Description  string                 `json:"description,omitempty"`
	PreviewURL   string                 `json:"preview_url" gorm:"not null"`
	DesignConfig map[string]interface{} `json:"design_config" gorm:"type:json;serializer:json"`
	UsageCount   int                    `json:"usage_count" gorm:"default:0"`
	IsActive     bool                   `json:"is_active" gorm:"default:true"`
	CreatedAt    time.Time              `json:"created_at"`
}

type TemplateRequest struct {
	Name         string                 `json:"name" validate:"required,max=100"`
	EventType    string                 `json:"event_type" validate:"required"`
	Description  string                 `json:"description"`
	PreviewURL   string                 `json:"preview_url" validate:"required,url"`
	DesignConfig map[string]interface{} `json:"design_config"`
}
