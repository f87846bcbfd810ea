package domain

import (
	"time"
)

// TemplateStatus represents the publication status of an audit template
type TemplateStatus string

const (
	TemplateStatusDraft     TemplateStatus = "DRAFT"
	TemplateStatusPublished TemplateStatus = "PUBLISHED"
	TemplateStatusArchived  TemplateStatus = "ARCHIVED"
)

// TemplateCategory represents the category of an audit template
type TemplateCategory string

const (
	TemplateCategorySafety      TemplateCategory = "SAFETY"
	TemplateCategoryCleanliness TemplateCategory = "CLEANLINESS"
	TemplateCategoryInventory   TemplateCategory = "INVENTORY"
	TemplateCategoryService     TemplateCategory = "SERVICE"
	TemplateCategoryCompliance  TemplateCategory = "COMPLIANCE"
)

// Template represents an audit template rolled out to a set of stores.
//
// Templates are value objects: lifecycle methods return a new value and the
// receiver is never modified. The ID is empty until the first save assigns one.
type Template struct {
	ID         string           `json:"id"`
	Title      string           `json:"title"`
	Category   TemplateCategory `json:"category"`
	Status     TemplateStatus   `json:"status"`
	Active     bool             `json:"active"`
	StoreCodes []string         `json:"store_codes"`
	Priority   int              `json:"priority"`
	CreatedAt  time.Time        `json:"created_at"`
}

// NewTemplate creates a draft template applicable to the given stores
func NewTemplate(title string, category TemplateCategory, storeCodes []string, priority int) Template {
	return Template{
		Title:      title,
		Category:   category,
		Status:     TemplateStatusDraft,
		Active:     true,
		StoreCodes: storeCodes,
		Priority:   priority,
		CreatedAt:  time.Now(),
	}
}

// Publish marks the template as published and visible to stores
func (t Template) Publish() Template {
	t.Status = TemplateStatusPublished
	return t
}

// Archive retires the template. Archived templates drop out of the
// status-filtered queries; the active flag is left as-is.
func (t Template) Archive() Template {
	t.Status = TemplateStatusArchived
	return t
}

// Deactivate hides the template from the active and per-store queries
// without changing its publication status
func (t Template) Deactivate() Template {
	t.Active = false
	return t
}

// AppliesTo reports whether the template is rolled out to the given store
func (t Template) AppliesTo(storeCode string) bool {
	for _, code := range t.StoreCodes {
		if code == storeCode {
			return true
		}
	}
	return false
}
