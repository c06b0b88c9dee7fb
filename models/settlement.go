package models

// Settlement records one visit to a client: counter readings are taken per
// table and the collected amount is split with the establishment. The
// financial arithmetic lives outside the sync engine; here a settlement is
// just a route-scoped record to replicate.
type Settlement struct {
	ID             int64  `json:"id" db:"id"`
	ClientID       int64  `json:"cliente_id" db:"client_id"`
	TableID        *int64 `json:"mesa_id" db:"table_id"`
	CycleID        *int64 `json:"ciclo_id" db:"cycle_id"`
	RouteID        *int64 `json:"rota_id" db:"route_id"`
	CollectedCents int64  `json:"valor_coletado" db:"collected_cents"`
	CompanyCents   int64  `json:"valor_empresa" db:"company_cents"`
	SettledAt      int64  `json:"data_acerto" db:"settled_at"`
	UpdatedAt      int64  `json:"lastModified" db:"updated_at"`
}

func (s Settlement) RecordID() int64    { return s.ID }
func (s Settlement) RouteScope() *int64 { return s.RouteID }
func (s Settlement) ModifiedAt() int64  { return s.UpdatedAt }

// Cycle is a collection period for a route: settlements and expenses are
// grouped by cycle for reporting.
type Cycle struct {
	ID        int64  `json:"id" db:"id"`
	RouteID   *int64 `json:"rota_id" db:"route_id"`
	Status    string `json:"status" db:"status"`
	StartedAt int64  `json:"data_inicio" db:"started_at"`
	ClosedAt  *int64 `json:"data_fechamento" db:"closed_at"`
	UpdatedAt int64  `json:"lastModified" db:"updated_at"`
}

func (c Cycle) RecordID() int64    { return c.ID }
func (c Cycle) RouteScope() *int64 { return c.RouteID }
func (c Cycle) ModifiedAt() int64  { return c.UpdatedAt }
