package store

import (
	"github.com/mbarbosa/mesasync/internal/logger"
	"github.com/mbarbosa/mesasync/models"
)

// Table specs map each entity onto its SQLite table: column order here must
// match both values() and scan().

var routeSpec = tableSpec[models.Route]{
	table:       "routes",
	routeColumn: "id",
	columns:     []string{"id", "name", "region", "active", "updated_at"},
	values: func(r models.Route) []any {
		return []any{r.ID, r.Name, r.Region, r.Active, r.UpdatedAt}
	},
	scan: func(row rowScanner) (models.Route, error) {
		var r models.Route
		err := row.Scan(&r.ID, &r.Name, &r.Region, &r.Active, &r.UpdatedAt)
		return r, err
	},
}

var collaboratorSpec = tableSpec[models.Collaborator]{
	table:   "collaborators",
	columns: []string{"id", "name", "phone", "role", "active", "updated_at"},
	values: func(c models.Collaborator) []any {
		return []any{c.ID, c.Name, c.Phone, c.Role, c.Active, c.UpdatedAt}
	},
	scan: func(row rowScanner) (models.Collaborator, error) {
		var c models.Collaborator
		err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Role, &c.Active, &c.UpdatedAt)
		return c, err
	},
}

var collaboratorRouteSpec = tableSpec[models.CollaboratorRoute]{
	table:       "collaborator_routes",
	routeColumn: "route_id",
	columns:     []string{"id", "collaborator_id", "route_id", "updated_at"},
	values: func(c models.CollaboratorRoute) []any {
		return []any{c.ID, c.CollaboratorID, c.RouteID, c.UpdatedAt}
	},
	scan: func(row rowScanner) (models.CollaboratorRoute, error) {
		var c models.CollaboratorRoute
		err := row.Scan(&c.ID, &c.CollaboratorID, &c.RouteID, &c.UpdatedAt)
		return c, err
	},
}

var clientSpec = tableSpec[models.Client]{
	table:       "clients",
	routeColumn: "route_id",
	columns:     []string{"id", "route_id", "name", "address", "city", "phone", "active", "updated_at"},
	values: func(c models.Client) []any {
		return []any{c.ID, c.RouteID, c.Name, c.Address, c.City, c.Phone, c.Active, c.UpdatedAt}
	},
	scan: func(row rowScanner) (models.Client, error) {
		var c models.Client
		err := row.Scan(&c.ID, &c.RouteID, &c.Name, &c.Address, &c.City, &c.Phone, &c.Active, &c.UpdatedAt)
		return c, err
	},
}

var tableSpecMesas = tableSpec[models.Table]{
	table:       "tables",
	routeColumn: "route_id",
	columns:     []string{"id", "client_id", "route_id", "serial_number", "size", "rent_cents", "active", "updated_at"},
	values: func(t models.Table) []any {
		return []any{t.ID, t.ClientID, t.RouteID, t.SerialNumber, t.Size, t.RentCents, t.Active, t.UpdatedAt}
	},
	scan: func(row rowScanner) (models.Table, error) {
		var t models.Table
		err := row.Scan(&t.ID, &t.ClientID, &t.RouteID, &t.SerialNumber, &t.Size, &t.RentCents, &t.Active, &t.UpdatedAt)
		return t, err
	},
}

var contractSpec = tableSpec[models.Contract]{
	table:       "contracts",
	routeColumn: "route_id",
	columns:     []string{"id", "client_id", "route_id", "number", "status", "signed_at", "updated_at"},
	values: func(c models.Contract) []any {
		return []any{c.ID, c.ClientID, c.RouteID, c.Number, c.Status, c.SignedAt, c.UpdatedAt}
	},
	scan: func(row rowScanner) (models.Contract, error) {
		var c models.Contract
		err := row.Scan(&c.ID, &c.ClientID, &c.RouteID, &c.Number, &c.Status, &c.SignedAt, &c.UpdatedAt)
		return c, err
	},
}

var settlementSpec = tableSpec[models.Settlement]{
	table:       "settlements",
	routeColumn: "route_id",
	columns:     []string{"id", "client_id", "table_id", "cycle_id", "route_id", "collected_cents", "company_cents", "settled_at", "updated_at"},
	values: func(s models.Settlement) []any {
		return []any{s.ID, s.ClientID, s.TableID, s.CycleID, s.RouteID, s.CollectedCents, s.CompanyCents, s.SettledAt, s.UpdatedAt}
	},
	scan: func(row rowScanner) (models.Settlement, error) {
		var s models.Settlement
		err := row.Scan(&s.ID, &s.ClientID, &s.TableID, &s.CycleID, &s.RouteID, &s.CollectedCents, &s.CompanyCents, &s.SettledAt, &s.UpdatedAt)
		return s, err
	},
}

var expenseSpec = tableSpec[models.Expense]{
	table:       "expenses",
	routeColumn: "route_id",
	columns:     []string{"id", "cycle_id", "route_id", "category", "description", "amount_cents", "incurred_at", "updated_at"},
	values: func(e models.Expense) []any {
		return []any{e.ID, e.CycleID, e.RouteID, e.Category, e.Description, e.AmountCents, e.IncurredAt, e.UpdatedAt}
	},
	scan: func(row rowScanner) (models.Expense, error) {
		var e models.Expense
		err := row.Scan(&e.ID, &e.CycleID, &e.RouteID, &e.Category, &e.Description, &e.AmountCents, &e.IncurredAt, &e.UpdatedAt)
		return e, err
	},
}

var cycleSpec = tableSpec[models.Cycle]{
	table:       "cycles",
	routeColumn: "route_id",
	columns:     []string{"id", "route_id", "status", "started_at", "closed_at", "updated_at"},
	values: func(c models.Cycle) []any {
		return []any{c.ID, c.RouteID, c.Status, c.StartedAt, c.ClosedAt, c.UpdatedAt}
	},
	scan: func(row rowScanner) (models.Cycle, error) {
		var c models.Cycle
		err := row.Scan(&c.ID, &c.RouteID, &c.Status, &c.StartedAt, &c.ClosedAt, &c.UpdatedAt)
		return c, err
	},
}

var goalSpec = tableSpec[models.Goal]{
	table:       "goals",
	routeColumn: "route_id",
	columns:     []string{"id", "route_id", "month", "target_cents", "updated_at"},
	values: func(g models.Goal) []any {
		return []any{g.ID, g.RouteID, g.Month, g.TargetCents, g.UpdatedAt}
	},
	scan: func(row rowScanner) (models.Goal, error) {
		var g models.Goal
		err := row.Scan(&g.ID, &g.RouteID, &g.Month, &g.TargetCents, &g.UpdatedAt)
		return g, err
	},
}

var collaboratorGoalSpec = tableSpec[models.CollaboratorGoal]{
	table:       "collaborator_goals",
	routeColumn: "route_id",
	columns:     []string{"id", "collaborator_id", "route_id", "month", "target_cents", "updated_at"},
	values: func(g models.CollaboratorGoal) []any {
		return []any{g.ID, g.CollaboratorID, g.RouteID, g.Month, g.TargetCents, g.UpdatedAt}
	},
	scan: func(row rowScanner) (models.CollaboratorGoal, error) {
		var g models.CollaboratorGoal
		err := row.Scan(&g.ID, &g.CollaboratorID, &g.RouteID, &g.Month, &g.TargetCents, &g.UpdatedAt)
		return g, err
	},
}

var signatureSpec = tableSpec[models.Signature]{
	table:       "signatures",
	routeColumn: "route_id",
	columns:     []string{"id", "contract_id", "client_id", "route_id", "image_path", "signed_at", "updated_at"},
	values: func(s models.Signature) []any {
		return []any{s.ID, s.ContractID, s.ClientID, s.RouteID, s.ImagePath, s.SignedAt, s.UpdatedAt}
	},
	scan: func(row rowScanner) (models.Signature, error) {
		var s models.Signature
		err := row.Scan(&s.ID, &s.ContractID, &s.ClientID, &s.RouteID, &s.ImagePath, &s.SignedAt, &s.UpdatedAt)
		return s, err
	},
}

var vehicleSpec = tableSpec[models.Vehicle]{
	table:   "vehicles",
	columns: []string{"id", "plate", "model", "year", "odometer_km", "active", "updated_at"},
	values: func(v models.Vehicle) []any {
		return []any{v.ID, v.Plate, v.Model, v.Year, v.OdometerKm, v.Active, v.UpdatedAt}
	},
	scan: func(row rowScanner) (models.Vehicle, error) {
		var v models.Vehicle
		err := row.Scan(&v.ID, &v.Plate, &v.Model, &v.Year, &v.OdometerKm, &v.Active, &v.UpdatedAt)
		return v, err
	},
}

var equipmentSpec = tableSpec[models.Equipment]{
	table:   "equipment",
	columns: []string{"id", "name", "serial_number", "condition", "updated_at"},
	values: func(e models.Equipment) []any {
		return []any{e.ID, e.Name, e.SerialNumber, e.Condition, e.UpdatedAt}
	},
	scan: func(row rowScanner) (models.Equipment, error) {
		var e models.Equipment
		err := row.Scan(&e.ID, &e.Name, &e.SerialNumber, &e.Condition, &e.UpdatedAt)
		return e, err
	},
}

var stockItemSpec = tableSpec[models.StockItem]{
	table:   "stock_items",
	columns: []string{"id", "name", "quantity", "unit", "updated_at"},
	values: func(s models.StockItem) []any {
		return []any{s.ID, s.Name, s.Quantity, s.Unit, s.UpdatedAt}
	},
	scan: func(row rowScanner) (models.StockItem, error) {
		var s models.StockItem
		err := row.Scan(&s.ID, &s.Name, &s.Quantity, &s.Unit, &s.UpdatedAt)
		return s, err
	},
}

// Storages bundles every repository the sync engine needs.
type Storages struct {
	Routes             EntityRepository[models.Route]
	Collaborators      EntityRepository[models.Collaborator]
	CollaboratorRoutes EntityRepository[models.CollaboratorRoute]
	Clients            EntityRepository[models.Client]
	Tables             EntityRepository[models.Table]
	Contracts          EntityRepository[models.Contract]
	Settlements        EntityRepository[models.Settlement]
	Expenses           EntityRepository[models.Expense]
	Cycles             EntityRepository[models.Cycle]
	Goals              EntityRepository[models.Goal]
	CollaboratorGoals  EntityRepository[models.CollaboratorGoal]
	Signatures         EntityRepository[models.Signature]
	Vehicles           EntityRepository[models.Vehicle]
	Equipment          EntityRepository[models.Equipment]
	StockItems         EntityRepository[models.StockItem]

	SyncMetadata SyncMetadataRepository
	Routing      RouteResolver
}

// NewStorages wires all repositories onto one database connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Routes:             newEntityRepository(db, routeSpec, log),
		Collaborators:      newEntityRepository(db, collaboratorSpec, log),
		CollaboratorRoutes: newEntityRepository(db, collaboratorRouteSpec, log),
		Clients:            newEntityRepository(db, clientSpec, log),
		Tables:             newEntityRepository(db, tableSpecMesas, log),
		Contracts:          newEntityRepository(db, contractSpec, log),
		Settlements:        newEntityRepository(db, settlementSpec, log),
		Expenses:           newEntityRepository(db, expenseSpec, log),
		Cycles:             newEntityRepository(db, cycleSpec, log),
		Goals:              newEntityRepository(db, goalSpec, log),
		CollaboratorGoals:  newEntityRepository(db, collaboratorGoalSpec, log),
		Signatures:         newEntityRepository(db, signatureSpec, log),
		Vehicles:           newEntityRepository(db, vehicleSpec, log),
		Equipment:          newEntityRepository(db, equipmentSpec, log),
		StockItems:         newEntityRepository(db, stockItemSpec, log),

		SyncMetadata: NewSyncMetadataRepository(db, log),
		Routing:      NewRouteResolver(db, log),
	}
}
