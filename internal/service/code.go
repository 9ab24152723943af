package service

import (
	"github.com/bestmoments/bestmoments-backend/pkg/apperror"
	"github.com/bestmoments/bestmoments-backend/pkg/utils"
)

// A collision at this alphabet size is astronomically unlikely; the cap exists
// so a storage fault cannot turn the retry loop into a hang. The unique index
// on events.event_code covers the window between check and insert.
const maxCodeAttempts = 20

type CodeChecker interface {
	CodeExists(code string) (bool, error)
}

// CodeGenerator produces event codes that are unique among all events ever
// created, soft-deleted ones included.
type CodeGenerator struct {
	events CodeChecker
}

func NewCodeGenerator(events CodeChecker) *CodeGenerator {
	return &CodeGenerator{events: events}
}

func (g *CodeGenerator) Generate() (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code := utils.GenerateEventCode(utils.EventCodeLength)
		exists, err := g.events.CodeExists(code)
		if err != nil {
			return "", apperror.NewInternal("Failed to check event code uniqueness", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", apperror.NewInternal("Could not generate a unique event code", nil)
}
