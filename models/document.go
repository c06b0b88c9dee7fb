package models

import (
	"strconv"
	"time"
)

// Wire field names shared by every remote collection. The remote store keeps
// the legacy document format, so the scoping field is "rota_id" and the
// last-writer-wins timestamp is "lastModified".
const (
	DocFieldID           = "id"
	DocFieldRouteID      = "rota_id"
	DocFieldClientID     = "cliente_id"
	DocFieldTableID      = "mesa_id"
	DocFieldLastModified = "lastModified"
)

// Document is one remote record in its wire shape. Values arrive as JSON
// types (float64 for numbers), so the accessors normalise them.
type Document map[string]any

// ID returns the document identifier, or 0 if absent or malformed.
func (d Document) ID() int64 {
	return docInt64(d[DocFieldID])
}

// RouteID returns the scoping route, or nil for global-scope documents.
func (d Document) RouteID() *int64 {
	return d.Ref(DocFieldRouteID)
}

// ClientID returns the owning client when the document carries one.
func (d Document) ClientID() *int64 {
	return d.Ref(DocFieldClientID)
}

// Ref returns an integer reference field, or nil when the field is absent,
// null or zero.
func (d Document) Ref(field string) *int64 {
	v, ok := d[field]
	if !ok || v == nil {
		return nil
	}
	id := docInt64(v)
	if id == 0 {
		return nil
	}
	return &id
}

// LastModified returns the document's modification timestamp in unix
// milliseconds, or 0 when the field is absent or unreadable.
func (d Document) LastModified() int64 {
	switch v := d[DocFieldLastModified].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case string:
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil {
			return ms
		}
		if t, err := time.Parse(time.RFC3339, v); err == nil {
			return t.UnixMilli()
		}
		return 0
	default:
		return 0
	}
}

func docInt64(v any) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case int:
		return int64(n)
	case string:
		id, err := strconv.ParseInt(n, 10, 64)
		if err != nil {
			return 0
		}
		return id
	default:
		return 0
	}
}
