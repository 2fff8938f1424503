package usecases

import (
	"github.com/shjfcs/foodwatch/internal/domain/complaint/valueobjects"
)

// Lookups carries the derivation tables the complaint form renders.
type Lookups struct {
	Categories     []valueobjects.CategoryOption      `json:"categories"`
	SectionActions []valueobjects.SectionActionOption `json:"section_actions"`
	DefaultStatus  string                             `json:"default_status"`
	ClosedStatus   string                             `json:"closed_status"`
}

type GetLookupsUseCase struct{}

func NewGetLookupsUseCase() *GetLookupsUseCase {
	return &GetLookupsUseCase{}
}

func (uc *GetLookupsUseCase) Execute() *Lookups {
	return &Lookups{
		Categories:     valueobjects.Categories(),
		SectionActions: valueobjects.SectionActions(),
		DefaultStatus:  valueobjects.StatusNew.String(),
		ClosedStatus:   valueobjects.StatusClosed.String(),
	}
}
