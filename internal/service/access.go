package service

import (
	"context"

	"github.com/mbarbosa/mesasync/internal/logger"
	"github.com/mbarbosa/mesasync/internal/store"
	"github.com/mbarbosa/mesasync/models"
)

// AccessFilter decides whether a record may cross the sync boundary for the
// current user. Any lookup error while resolving an owning route is treated
// as deny; an owner the local store has not replicated yet resolves to no
// route and is not a denial.
type AccessFilter struct {
	resolver store.RouteResolver
	logger   *logger.Logger
}

func NewAccessFilter(resolver store.RouteResolver, log *logger.Logger) *AccessFilter {
	return &AccessFilter{resolver: resolver, logger: log.WithComponent("access_filter")}
}

// CanAccessRoute reports whether the context may touch records scoped to
// routeID. A nil routeID is a global-scope record, accessible to everyone.
func (f *AccessFilter) CanAccessRoute(routeID *int64, actx models.AccessContext) bool {
	if routeID == nil {
		return true
	}
	if actx.IsAdmin {
		return true
	}
	return actx.HasRoute(*routeID)
}

// ShouldSyncRecord applies CanAccessRoute and then, when the record carries
// a client or table reference, verifies that the referenced owner's route
// agrees with the record's own scoping route. A disagreement means the
// record's route field cannot be trusted, so the record is rejected.
func (f *AccessFilter) ShouldSyncRecord(ctx context.Context, routeID, clientID, tableID *int64, actx models.AccessContext) bool {
	if !f.CanAccessRoute(routeID, actx) {
		return false
	}

	if clientID != nil {
		owning, err := f.resolver.ClientRouteID(ctx, *clientID)
		if err != nil {
			f.logger.Warn().Err(err).Int64("client_id", *clientID).Msg("route resolution failed, denying record")
			return false
		}
		if !routesAgree(routeID, owning) {
			f.logger.Warn().Int64("client_id", *clientID).Msg("record route disagrees with owning client route, denying record")
			return false
		}
	}

	if tableID != nil {
		owning, err := f.resolver.TableRouteID(ctx, *tableID)
		if err != nil {
			f.logger.Warn().Err(err).Int64("table_id", *tableID).Msg("route resolution failed, denying record")
			return false
		}
		if !routesAgree(routeID, owning) {
			f.logger.Warn().Int64("table_id", *tableID).Msg("record route disagrees with owning table route, denying record")
			return false
		}
	}

	return true
}

// routesAgree accepts a nil owning route (the owner is global scope) and
// otherwise requires an exact match.
func routesAgree(recordRoute, owningRoute *int64) bool {
	if owningRoute == nil {
		return true
	}
	return recordRoute != nil && *recordRoute == *owningRoute
}
