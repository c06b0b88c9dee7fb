package models

// Client is a commercial establishment (bar, snooker hall) renting one or
// more pool tables. Clients are route-scoped.
type Client struct {
	ID        int64  `json:"id" db:"id"`
	RouteID   *int64 `json:"rota_id" db:"route_id"`
	Name      string `json:"nome" db:"name"`
	Address   string `json:"endereco" db:"address"`
	City      string `json:"cidade" db:"city"`
	Phone     string `json:"telefone" db:"phone"`
	Active    bool   `json:"ativo" db:"active"`
	UpdatedAt int64  `json:"lastModified" db:"updated_at"`
}

func (c Client) RecordID() int64    { return c.ID }
func (c Client) RouteScope() *int64 { return c.RouteID }
func (c Client) ModifiedAt() int64  { return c.UpdatedAt }
