package domain

type TemplateType string

const (
	TemplateTypeConfirmation TemplateType = "confirmation"
	TemplateTypeReminder     TemplateType = "reminder"
	TemplateTypeFollowUp     TemplateType = "follow_up"
	TemplateTypeGeneral      TemplateType = "general"
)

var TemplateTypes = []TemplateType{
	TemplateTypeConfirmation,
	TemplateTypeReminder,
	TemplateTypeFollowUp,
	TemplateTypeGeneral,
}

func (t TemplateType) Valid() bool {
	switch t {
	case TemplateTypeConfirmation, TemplateTypeReminder, TemplateTypeFollowUp, TemplateTypeGeneral:
		return true
	}
	return false
}

type MessageTemplate struct {
	Model
	Name         string       `json:"name" db:"name"`
	Content      string       `json:"content" db:"content"`
	TemplateType TemplateType `json:"template_type" db:"template_type"`
	IsActive     bool         `json:"is_active" db:"is_active"`
}

type MessageTemplatePatch struct {
	Name         Optional[string]
	Content      Optional[string]
	TemplateType Optional[TemplateType]
	IsActive     Optional[bool]
}
