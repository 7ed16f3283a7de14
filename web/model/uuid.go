package model

import (
	"encoding/json"
	"github.com/gofrs/uuid/v5"
	"github.com/jxskiss/base62"
)

var itineraryNamespace = uuid.Must(uuid.FromString("9b1c5e4a-6f0d-4b7e-8a43-2d8f1e0c7a55"))

// UUID is rendered as base62 in responses and headers to keep ids short.
type UUID uuid.UUID

// NewSearchId returns a random id for a single search request.
func NewSearchId() (UUID, error) {
	u, err := uuid.NewV4()
	return UUID(u), err
}

func nameUUID(name string) UUID {
	return UUID(uuid.NewV5(itineraryNamespace, name))
}

func (u UUID) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.String())
}

func (u UUID) String() string {
	return base62.EncodeToString(u[:])
}
