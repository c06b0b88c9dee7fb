package models

import "sort"

// AccessContext captures the current user's identity and route grants for
// one sync cycle. It is recomputed at the start of every cycle because
// permissions can change between cycles; it is never persisted.
type AccessContext struct {
	UserID    int64
	CompanyID string
	IsAdmin   bool
	RouteIDs  map[int64]struct{}
}

// NewAccessContext builds an AccessContext from an explicit route grant list.
func NewAccessContext(userID int64, companyID string, isAdmin bool, routeIDs []int64) AccessContext {
	set := make(map[int64]struct{}, len(routeIDs))
	for _, id := range routeIDs {
		set[id] = struct{}{}
	}
	return AccessContext{UserID: userID, CompanyID: companyID, IsAdmin: isAdmin, RouteIDs: set}
}

// HasRoute reports whether the context explicitly grants routeID. Admin
// callers should not reach this check; CanAccessRoute short-circuits first.
func (c AccessContext) HasRoute(routeID int64) bool {
	_, ok := c.RouteIDs[routeID]
	return ok
}

// RouteList returns the granted route IDs as a slice, for building
// route-restricted remote queries. Empty for admins, who query unfiltered.
func (c AccessContext) RouteList() []int64 {
	if c.IsAdmin {
		return nil
	}
	ids := make([]int64, 0, len(c.RouteIDs))
	for id := range c.RouteIDs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
