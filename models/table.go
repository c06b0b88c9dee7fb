package models

// Table is a rented pool table. A table placed at a client inherits that
// client's route; tables in the depot have no client and no route.
type Table struct {
	ID           int64  `json:"id" db:"id"`
	ClientID     *int64 `json:"cliente_id" db:"client_id"`
	RouteID      *int64 `json:"rota_id" db:"route_id"`
	SerialNumber string `json:"numero_serie" db:"serial_number"`
	Size         string `json:"tamanho" db:"size"`
	RentCents    int64  `json:"valor_aluguel" db:"rent_cents"`
	Active       bool   `json:"ativa" db:"active"`
	UpdatedAt    int64  `json:"lastModified" db:"updated_at"`
}

func (t Table) RecordID() int64    { return t.ID }
func (t Table) RouteScope() *int64 { return t.RouteID }
func (t Table) ModifiedAt() int64  { return t.UpdatedAt }
