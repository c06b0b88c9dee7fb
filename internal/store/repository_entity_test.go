package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/mbarbosa/mesasync/internal/logger"
	"github.com/mbarbosa/mesasync/models"
)

func newTestClientRepo(t *testing.T) (*entityRepository[models.Client], sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &entityRepository[models.Client]{
		db:     &DB{DB: db, logger: l},
		spec:   clientSpec,
		logger: l,
	}
	return repo, mock, db
}

func clientRows() *sqlmock.Rows {
	return sqlmock.NewRows(clientSpec.columns)
}

func TestEntityModifiedSince_RouteFilter(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	route := int64(7)
	rows := clientRows().
		AddRow(1, route, "Bar do Zé", "Rua A 10", "Campinas", "19-9999", true, 1500).
		AddRow(2, nil, "Sede", "", "", "", true, 1600)

	mock.ExpectQuery("SELECT id, route_id, name, address, city, phone, active, updated_at FROM clients").
		WithArgs(int64(1000), int64(7)).
		WillReturnRows(rows)

	recs, err := repo.ModifiedSince(context.Background(), 1000, []int64{7})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 records, got %d", len(recs))
	}
	if recs[0].ID != 1 || recs[0].RouteID == nil || *recs[0].RouteID != 7 {
		t.Errorf("unexpected first record: %+v", recs[0])
	}
	if recs[1].RouteID != nil {
		t.Errorf("expected global-scope second record, got route %v", *recs[1].RouteID)
	}
}

func TestEntityModifiedSince_NoRouteRestriction(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, route_id, name, address, city, phone, active, updated_at FROM clients").
		WithArgs(int64(0)).
		WillReturnRows(clientRows())

	recs, err := repo.ModifiedSince(context.Background(), 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no records, got %d", len(recs))
	}
}

func TestEntityModifiedSince_QueryError(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, route_id").
		WillReturnError(errors.New("disk I/O error"))

	_, err := repo.ModifiedSince(context.Background(), 0, nil)
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestEntityGet_Success(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, route_id").
		WithArgs(int64(42)).
		WillReturnRows(clientRows().AddRow(42, 7, "Snooker Real", "Av B 2", "Sumaré", "", true, 900))

	rec, err := repo.Get(context.Background(), 42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ID != 42 || rec.Name != "Snooker Real" {
		t.Errorf("unexpected record: %+v", rec)
	}
}

func TestEntityGet_NotFound(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, route_id").
		WithArgs(int64(42)).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.Get(context.Background(), 42)
	if !errors.Is(err, ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestEntityUpsert_ReplacesByID(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	route := int64(7)
	rec := models.Client{ID: 42, RouteID: &route, Name: "Snooker Real", Active: true, UpdatedAt: 900}

	mock.ExpectBegin()
	mock.ExpectExec("REPLACE INTO clients").
		WithArgs(rec.ID, rec.RouteID, rec.Name, rec.Address, rec.City, rec.Phone, rec.Active, rec.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(42, 1))
	mock.ExpectCommit()

	if err := repo.Upsert(context.Background(), rec); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestEntityUpsert_EmptyBatchIsNoop(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	if err := repo.Upsert(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expected no DB calls: %v", err)
	}
}

func TestEntityUpsert_RollsBackOnError(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("REPLACE INTO clients").
		WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := repo.Upsert(context.Background(), models.Client{ID: 1})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
	if err = mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestEntityCountModifiedSince(t *testing.T) {
	repo, mock, db := newTestClientRepo(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM clients`).
		WithArgs(int64(500)).
		WillReturnRows(sqlmock.NewRows([]string{"COUNT(*)"}).AddRow(3))

	count, err := repo.CountModifiedSince(context.Background(), 500)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 3 {
		t.Errorf("expected 3, got %d", count)
	}
}
