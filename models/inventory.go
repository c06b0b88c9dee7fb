package models

// Vehicle is a company vehicle used to service routes. Global scope.
type Vehicle struct {
	ID         int64  `json:"id" db:"id"`
	Plate      string `json:"placa" db:"plate"`
	Model      string `json:"modelo" db:"model"`
	Year       int    `json:"ano" db:"year"`
	OdometerKm int64  `json:"km_atual" db:"odometer_km"`
	Active     bool   `json:"ativo" db:"active"`
	UpdatedAt  int64  `json:"lastModified" db:"updated_at"`
}

func (v Vehicle) RecordID() int64    { return v.ID }
func (v Vehicle) RouteScope() *int64 { return nil }
func (v Vehicle) ModifiedAt() int64  { return v.UpdatedAt }

// Equipment is a maintenance asset (lathe, cloth stretcher, tooling).
// Global scope.
type Equipment struct {
	ID           int64  `json:"id" db:"id"`
	Name         string `json:"nome" db:"name"`
	SerialNumber string `json:"numero_serie" db:"serial_number"`
	Condition    string `json:"condicao" db:"condition"`
	UpdatedAt    int64  `json:"lastModified" db:"updated_at"`
}

func (e Equipment) RecordID() int64    { return e.ID }
func (e Equipment) RouteScope() *int64 { return nil }
func (e Equipment) ModifiedAt() int64  { return e.UpdatedAt }

// StockItem is a consumable kept in the depot (cloths, balls, chalk, cues).
// Global scope.
type StockItem struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"nome" db:"name"`
	Quantity  int64  `json:"quantidade" db:"quantity"`
	Unit      string `json:"unidade" db:"unit"`
	UpdatedAt int64  `json:"lastModified" db:"updated_at"`
}

func (s StockItem) RecordID() int64    { return s.ID }
func (s StockItem) RouteScope() *int64 { return nil }
func (s StockItem) ModifiedAt() int64  { return s.UpdatedAt }
