package database

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/bestmoments/bestmoments-backend/internal/models"
)

// New opens the database connection and runs migrations. The returned handle
// is passed to repositories explicitly; there is no package-level instance.
func New(databaseURL string) (*gorm.DB, error) {
	if databaseURL == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Event{},
		&models.Album{},
		&models.Image{},
		&models.Template{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := seedTemplates(db); err != nil {
		return nil, fmt.Errorf("failed to seed templates: %w", err)
	}

	return db, nil
}

// seedTemplates inserts the starter template catalogue on an empty table.
func seedTemplates(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Template{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	templates := []models.Template{
		{
			Name:         "Elegant Wedding",
			EventType:    models.EventTypeWedding,
			Description:  "Classic and elegant wedding template with gold accents",
			PreviewURL:   "https://via.placeholder.com/400x600/FFE5E5/D4AF37?text=Elegant+Wedding",
			DesignConfig: map[string]interface{}{"color_scheme": "gold", "style": "elegant"},
			IsActive:     true,
		},
		{
			Name:         "Romantic Wedding",
			EventType:    models.EventTypeWedding,
			Description:  "Romantic template with pink and white tones",
			PreviewURL:   "https://via.placeholder.com/400x600/FFF0F5/FF69B4?text=Romantic+Wedding",
			DesignConfig: map[string]interface{}{"color_scheme": "pink", "style": "romantic"},
			IsActive:     true,
		},
		{
			Name:         "Colorful Birthday",
			EventType:    models.EventTypeBirthday,
			Description:  "Vibrant and colorful birthday celebration template",
			PreviewURL:   "https://via.placeholder.com/400x600/FFF9E6/FF6B9D?text=Colorful+Birthday",
			DesignConfig: map[string]interface{}{"color_scheme": "rainbow", "style": "fun"},
			IsActive:     true,
		},
		{
			Name:         "Elegant Birthday",
			EventType:    models.EventTypeBirthday,
			Description:  "Sophisticated birthday template for adults",
			PreviewURL:   "https://via.placeholder.com/400x600/FFF5F0/FFD700?text=Elegant+Birthday",
			DesignConfig: map[string]interface{}{"color_scheme": "gold", "style": "elegant"},
			IsActive:     true,
		},
		{
			Name:         "Love & Romance",
			EventType:    models.EventTypeEngagement,
			Description:  "Romantic engagement template with hearts",
			PreviewURL:   "https://via.placeholder.com/400x600/FFF0F5/C71585?text=Love+Romance",
			DesignConfig: map[string]interface{}{"color_scheme": "pink", "style": "romantic"},
			IsActive:     true,
		},
		{
			Name:         "Golden Blessings",
			EventType:    models.EventTypeAnnoprasan,
			Description:  "Traditional template with golden tones",
			PreviewURL:   "https://via.placeholder.com/400x600/FFF8DC/FFD700?text=Golden+Blessings",
			DesignConfig: map[string]interface{}{"color_scheme": "gold", "style": "traditional"},
			IsActive:     true,
		},
	}

	return db.Create(&templates).Error
}
