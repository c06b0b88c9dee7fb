package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/mbarbosa/mesasync/internal/logger"
)

type routeResolver struct {
	db     *DB
	logger *logger.Logger
}

// NewRouteResolver returns the SQLite-backed [RouteResolver].
func NewRouteResolver(db *DB, log *logger.Logger) RouteResolver {
	return &routeResolver{db: db, logger: log.WithComponent("route_resolver")}
}

func (r *routeResolver) ClientRouteID(ctx context.Context, clientID int64) (*int64, error) {
	query, args, err := sq.Select("route_id").
		From("clients").
		Where(sq.Eq{"id": clientID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var routeID *int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&routeID)
	if errors.Is(err, sql.ErrNoRows) {
		// an owner not yet replicated carries no scoping information
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return routeID, nil
}

func (r *routeResolver) TableRouteID(ctx context.Context, tableID int64) (*int64, error) {
	query, args, err := sq.Select("route_id", "client_id").
		From("tables").
		Where(sq.Eq{"id": tableID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingQuery, err)
	}

	var routeID, clientID *int64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&routeID, &clientID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if routeID != nil {
		return routeID, nil
	}
	if clientID == nil {
		// depot table, no placement
		return nil, nil
	}

	return r.ClientRouteID(ctx, *clientID)
}
