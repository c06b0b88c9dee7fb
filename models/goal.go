package models

// Goal is a monthly collection target for a route.
type Goal struct {
	ID          int64  `json:"id" db:"id"`
	RouteID     *int64 `json:"rota_id" db:"route_id"`
	Month       string `json:"mes" db:"month"`
	TargetCents int64  `json:"valor_meta" db:"target_cents"`
	UpdatedAt   int64  `json:"lastModified" db:"updated_at"`
}

func (g Goal) RecordID() int64    { return g.ID }
func (g Goal) RouteScope() *int64 { return g.RouteID }
func (g Goal) ModifiedAt() int64  { return g.UpdatedAt }

// CollaboratorGoal is an individual target assigned to a collaborator,
// optionally narrowed to one of their routes.
type CollaboratorGoal struct {
	ID             int64  `json:"id" db:"id"`
	CollaboratorID int64  `json:"colaborador_id" db:"collaborator_id"`
	RouteID        *int64 `json:"rota_id" db:"route_id"`
	Month          string `json:"mes" db:"month"`
	TargetCents    int64  `json:"valor_meta" db:"target_cents"`
	UpdatedAt      int64  `json:"lastModified" db:"updated_at"`
}

func (g CollaboratorGoal) RecordID() int64    { return g.ID }
func (g CollaboratorGoal) RouteScope() *int64 { return g.RouteID }
func (g CollaboratorGoal) ModifiedAt() int64  { return g.UpdatedAt }
