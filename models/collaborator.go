package models

// Collaborator is an employee of the rental company. Collaborators are
// global-scope records: the roster itself is visible to every user, access
// is restricted at the route-assignment level.
type Collaborator struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"nome" db:"name"`
	Phone     string `json:"telefone" db:"phone"`
	Role      string `json:"funcao" db:"role"`
	Active    bool   `json:"ativo" db:"active"`
	UpdatedAt int64  `json:"lastModified" db:"updated_at"`
}

func (c Collaborator) RecordID() int64    { return c.ID }
func (c Collaborator) RouteScope() *int64 { return nil }
func (c Collaborator) ModifiedAt() int64  { return c.UpdatedAt }

// CollaboratorRoute assigns a collaborator to a route. The assignment is
// scoped to the route it grants.
type CollaboratorRoute struct {
	ID             int64 `json:"id" db:"id"`
	CollaboratorID int64 `json:"colaborador_id" db:"collaborator_id"`
	RouteID        int64 `json:"rota_id" db:"route_id"`
	UpdatedAt      int64 `json:"lastModified" db:"updated_at"`
}

func (c CollaboratorRoute) RecordID() int64    { return c.ID }
func (c CollaboratorRoute) RouteScope() *int64 { return &c.RouteID }
func (c CollaboratorRoute) ModifiedAt() int64  { return c.UpdatedAt }
