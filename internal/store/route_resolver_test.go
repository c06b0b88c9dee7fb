package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/mbarbosa/mesasync/internal/logger"
)

func newTestRouteResolver(t *testing.T) (*routeResolver, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	resolver := &routeResolver{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return resolver, mock, db
}

func TestClientRouteID(t *testing.T) {
	resolver, mock, db := newTestRouteResolver(t)
	defer db.Close()

	mock.ExpectQuery("SELECT route_id FROM clients").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"route_id"}).AddRow(7))

	routeID, err := resolver.ClientRouteID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if routeID == nil || *routeID != 7 {
		t.Errorf("expected route 7, got %v", routeID)
	}
}

func TestClientRouteID_GlobalClient(t *testing.T) {
	resolver, mock, db := newTestRouteResolver(t)
	defer db.Close()

	mock.ExpectQuery("SELECT route_id FROM clients").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"route_id"}).AddRow(nil))

	routeID, err := resolver.ClientRouteID(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if routeID != nil {
		t.Errorf("expected nil route, got %v", *routeID)
	}
}

func TestClientRouteID_UnknownClient(t *testing.T) {
	resolver, mock, db := newTestRouteResolver(t)
	defer db.Close()

	mock.ExpectQuery("SELECT route_id FROM clients").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	routeID, err := resolver.ClientRouteID(context.Background(), 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if routeID != nil {
		t.Errorf("expected nil route for a not yet replicated client, got %v", *routeID)
	}
}

func TestClientRouteID_QueryError(t *testing.T) {
	resolver, mock, db := newTestRouteResolver(t)
	defer db.Close()

	mock.ExpectQuery("SELECT route_id FROM clients").
		WithArgs(int64(1)).
		WillReturnError(errors.New("database is locked"))

	_, err := resolver.ClientRouteID(context.Background(), 1)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestTableRouteID_Direct(t *testing.T) {
	resolver, mock, db := newTestRouteResolver(t)
	defer db.Close()

	mock.ExpectQuery("SELECT route_id, client_id FROM tables").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"route_id", "client_id"}).AddRow(3, 1))

	routeID, err := resolver.TableRouteID(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if routeID == nil || *routeID != 3 {
		t.Errorf("expected route 3, got %v", routeID)
	}
}

func TestTableRouteID_ResolvedThroughClient(t *testing.T) {
	resolver, mock, db := newTestRouteResolver(t)
	defer db.Close()

	mock.ExpectQuery("SELECT route_id, client_id FROM tables").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"route_id", "client_id"}).AddRow(nil, 1))
	mock.ExpectQuery("SELECT route_id FROM clients").
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"route_id"}).AddRow(7))

	routeID, err := resolver.TableRouteID(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if routeID == nil || *routeID != 7 {
		t.Errorf("expected route 7 via client, got %v", routeID)
	}
}

func TestTableRouteID_UnknownTable(t *testing.T) {
	resolver, mock, db := newTestRouteResolver(t)
	defer db.Close()

	mock.ExpectQuery("SELECT route_id, client_id FROM tables").
		WithArgs(int64(99)).
		WillReturnError(sql.ErrNoRows)

	routeID, err := resolver.TableRouteID(context.Background(), 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if routeID != nil {
		t.Errorf("expected nil route for a not yet replicated table, got %v", *routeID)
	}
}

func TestTableRouteID_DepotTable(t *testing.T) {
	resolver, mock, db := newTestRouteResolver(t)
	defer db.Close()

	mock.ExpectQuery("SELECT route_id, client_id FROM tables").
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"route_id", "client_id"}).AddRow(nil, nil))

	routeID, err := resolver.TableRouteID(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if routeID != nil {
		t.Errorf("expected nil route for depot table, got %v", *routeID)
	}
}
