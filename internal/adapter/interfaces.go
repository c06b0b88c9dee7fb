package adapter

import (
	"context"

	"github.com/mbarbosa/mesasync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// DocumentQuery narrows a collection fetch. A nil RouteIDs means no route
// restriction (admin scope); a non-nil slice restricts route-scoped
// documents to those routes while unscoped documents always pass.
type DocumentQuery struct {
	UpdatedAfter int64
	RouteIDs     []int64
}

// RemoteStore is the outbound contract against the company's remote document
// store. Every entity collection shares the same document wire shape, so one
// adapter serves all sync handlers.
type RemoteStore interface {
	// Login exchanges credentials for a signed bearer token and stores it
	// on the adapter for subsequent calls.
	Login(ctx context.Context, creds models.Credentials) (string, error)

	// SetToken installs a pre-issued bearer token, skipping Login.
	SetToken(token string)

	// Token returns the currently installed bearer token.
	Token() string

	// FetchDocuments returns collection documents matching the query
	// together with the number of response bytes received.
	FetchDocuments(ctx context.Context, collection string, query DocumentQuery) ([]models.Document, int64, error)

	// PushDocuments uploads documents to the collection and returns the
	// number of request bytes sent. The remote upserts by document id.
	PushDocuments(ctx context.Context, collection string, docs []models.Document) (int64, error)
}
