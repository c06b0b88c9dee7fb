package models

// Expense is an operating cost charged against a route cycle (fuel, repairs,
// cloth replacement). A nil route means a company-wide expense.
type Expense struct {
	ID          int64  `json:"id" db:"id"`
	CycleID     *int64 `json:"ciclo_id" db:"cycle_id"`
	RouteID     *int64 `json:"rota_id" db:"route_id"`
	Category    string `json:"categoria" db:"category"`
	Description string `json:"descricao" db:"description"`
	AmountCents int64  `json:"valor" db:"amount_cents"`
	IncurredAt  int64  `json:"data_despesa" db:"incurred_at"`
	UpdatedAt   int64  `json:"lastModified" db:"updated_at"`
}

func (e Expense) RecordID() int64    { return e.ID }
func (e Expense) RouteScope() *int64 { return e.RouteID }
func (e Expense) ModifiedAt() int64  { return e.UpdatedAt }
