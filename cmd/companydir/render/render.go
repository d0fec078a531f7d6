package render

import (
	"companydir/internal/catalog"
	"fmt"
)

type Renderer interface {
	RenderCompanyList(view CompanyListView) string
}

type CompanyListView struct {
	Items []CompanyCard
}

// CompanyCard is what a card shows. Empty fields are rendered as missing,
// an empty Website as "No website".
type CompanyCard struct {
	Name        string
	Category    string
	Description string
	City        string
	Wilaya      string
	Type        string
	Website     string
}

func NewCompanyListView(records []catalog.Record) CompanyListView {
	items := make([]CompanyCard, len(records))
	for i, r := range records {
		items[i] = CompanyCard{
			Name:        r.Name,
			Category:    r.Category,
			Description: r.Description,
			City:        r.City,
			Wilaya:      r.Wilaya,
			Type:        r.Type,
			Website:     r.Website,
		}
	}
	return CompanyListView{Items: items}
}

func (v CompanyListView) IsEmpty() bool {
	return len(v.Items) == 0
}

func (v CompanyListView) CountLabel() string {
	return CountLabel(len(v.Items))
}

func CountLabel(n int) string {
	if n == 1 {
		return "1 result"
	}
	return fmt.Sprintf("%d results", n)
}
