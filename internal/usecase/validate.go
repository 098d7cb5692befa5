package usecase

import (
	"fmt"

	"github.com/mainul35/dynamic-site-builder-sub000/internal/core"
)

type ValidateInput struct {
	Pages []*core.PageDefinition
}

type ValidateOutput struct {
	Diagnostics []core.Diagnostic
	Error       error
}

// ValidateService checks page documents against the tree invariants
// without exporting anything.
type ValidateService struct{}

func NewValidateService() *ValidateService {
	return &ValidateService{}
}

func (s *ValidateService) Validate(input ValidateInput) ValidateOutput {
	diags := core.NewDiagnostics()

	for _, page := range input.Pages {
		if err := core.ValidateRoutePath(page.Route()); err != nil {
			diags.Warnf("", "page %q: %v", page.PageName, err)
		}
		if _, err := core.BuildPageIndex(page, diags); err != nil {
			diags.Errorf("", "page %q: %v", page.PageName, err)
			return ValidateOutput{
				Diagnostics: diags.Entries(),
				Error:       fmt.Errorf("page %q: %w", page.PageName, err),
			}
		}
	}

	return ValidateOutput{Diagnostics: diags.Entries()}
}
