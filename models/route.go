package models

// Route is the access-control partition of the system: every scoped record
// belongs to exactly one route, and a user may only sync routes they were
// granted.
type Route struct {
	ID        int64  `json:"id" db:"id"`
	Name      string `json:"nome" db:"name"`
	Region    string `json:"regiao" db:"region"`
	Active    bool   `json:"ativa" db:"active"`
	UpdatedAt int64  `json:"lastModified" db:"updated_at"`
}

func (r Route) RecordID() int64 { return r.ID }

// RouteScope of a route is the route itself: non-admin users only pull the
// routes they can access.
func (r Route) RouteScope() *int64 { return &r.ID }

func (r Route) ModifiedAt() int64 { return r.UpdatedAt }
