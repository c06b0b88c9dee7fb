package service

import (
	"encoding/json"
	"fmt"

	"github.com/mbarbosa/mesasync/models"
)

// The remote document shape and the local record shape share their JSON wire
// names, so mapping is a marshal round-trip. A record that does not survive
// the round-trip is malformed and fails the handler with [ErrMappingFailed].

func docToRecord[T models.Record](doc models.Document) (T, error) {
	var rec T
	if doc.ID() == 0 {
		return rec, fmt.Errorf("%w: document without id", ErrMappingFailed)
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return rec, fmt.Errorf("%w: encode document %d: %w", ErrMappingFailed, doc.ID(), err)
	}
	if err = json.Unmarshal(raw, &rec); err != nil {
		return rec, fmt.Errorf("%w: decode document %d: %w", ErrMappingFailed, doc.ID(), err)
	}

	return rec, nil
}

func recordToDoc[T models.Record](rec T) (models.Document, error) {
	raw, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("%w: encode record %d: %w", ErrMappingFailed, rec.RecordID(), err)
	}

	var doc models.Document
	if err = json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: decode record %d: %w", ErrMappingFailed, rec.RecordID(), err)
	}

	return doc, nil
}
