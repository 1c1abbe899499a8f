package domain

type Customer struct {
	Model
	Name    string  `json:"name" db:"name"`
	Phone   string  `json:"phone" db:"phone"`
	Email   *string `json:"email" db:"email"`
	Address *string `json:"address" db:"address"`
	Notes   *string `json:"notes" db:"notes"`
}

type CustomerPatch struct {
	Name    Optional[string]
	Phone   Optional[string]
	Email   Nullable[string]
	Address Nullable[string]
	Notes   Nullable[string]
}
