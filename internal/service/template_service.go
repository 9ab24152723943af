package service

import (
	"github.com/bestmoments/bestmoments-backend/internal/models"
	"github.com/bestmoments/bestmoments-backend/pkg/apperror"
)

type TemplateService struct {
	templateRepo TemplateRepository
}

func NewTemplateService(templateRepo TemplateRepository) *TemplateService {
	return &TemplateService{templateRepo: templateRepo}
}

func (s *TemplateService) CreateTemplate(req models.TemplateRequest) (*models.Template, error) {
	designConfig := req.DesignConfig
	if designConfig == nil {
		designConfig = map[string]interface{}{}
	}

	template := &models.Template{
		Name:         req.Name,
		EventType:    req.EventType,
		Description:  req.Description,
		PreviewURL:   req.PreviewURL,
		DesignConfig: designConfig,
		UsageCount:   0,
		IsActive:     true,
	}
	return s.templateRepo.Create(template)
}

func (s *TemplateService) GetTemplate(id uint) (*models.Template, error) {
	template, err := s.templateRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, apperror.NewNotFound("Template not found")
	}
	return template, nil
}

func (s *TemplateService) ListTemplates(eventType string, page, limit int) ([]models.Template, int64, error) {
	return s.templateRepo.ListActive(eventType, (page-1)*limit, limit)
}

// DeleteTemplate deactivates the template; usage counts survive because they
// are monotonic across the template's lifetime.
func (s *TemplateService) DeleteTemplate(id uint) error {
	template, err := s.templateRepo.GetByID(id)
	if err != nil {
		return err
	}
	if template == nil {
		return apperror.NewNotFound("Template not found")
	}
	return s.templateRepo.Update(id, map[string]interface{}{"is_active": false})
}
