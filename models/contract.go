package models

// Contract is a rental agreement between the company and a client.
type Contract struct {
	ID        int64  `json:"id" db:"id"`
	ClientID  int64  `json:"cliente_id" db:"client_id"`
	RouteID   *int64 `json:"rota_id" db:"route_id"`
	Number    string `json:"numero" db:"number"`
	Status    string `json:"status" db:"status"`
	SignedAt  int64  `json:"data_assinatura" db:"signed_at"`
	UpdatedAt int64  `json:"lastModified" db:"updated_at"`
}

func (c Contract) RecordID() int64    { return c.ID }
func (c Contract) RouteScope() *int64 { return c.RouteID }
func (c Contract) ModifiedAt() int64  { return c.UpdatedAt }

// Signature is a captured contract signature image reference together with
// its audit fields.
type Signature struct {
	ID         int64  `json:"id" db:"id"`
	ContractID int64  `json:"contrato_id" db:"contract_id"`
	ClientID   *int64 `json:"cliente_id" db:"client_id"`
	RouteID    *int64 `json:"rota_id" db:"route_id"`
	ImagePath  string `json:"caminho_imagem" db:"image_path"`
	SignedAt   int64  `json:"data_assinatura" db:"signed_at"`
	UpdatedAt  int64  `json:"lastModified" db:"updated_at"`
}

func (s Signature) RecordID() int64    { return s.ID }
func (s Signature) RouteScope() *int64 { return s.RouteID }
func (s Signature) ModifiedAt() int64  { return s.UpdatedAt }
