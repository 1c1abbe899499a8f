package domain

type FAQ struct {
	Model
	Question string  `json:"question" db:"question"`
	Answer   string  `json:"answer" db:"answer"`
	Category *string `json:"category" db:"category"`
	IsActive bool    `json:"is_active" db:"is_active"`
}

type FAQPatch struct {
	Question Optional[string]
	Answer   Optional[string]
	Category Nullable[string]
	IsActive Optional[bool]
}
