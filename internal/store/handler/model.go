package storehandler

import (
	"github.com/xw1nchester/storefront-backend/internal/store"
	"github.com/xw1nchester/storefront-backend/pkg/types"
)

type LocationRequest struct {
	Address     string                `json:"address" validate:"required"`
	Coordinates []types.FloatOrString `json:"coordinates" validate:"required,len=2"`
}

type StoreRequest struct {
	Name        string          `json:"name" validate:"required"`
	Description string          `json:"description"`
	Tags        []string        `json:"tags"`
	Location    LocationRequest `json:"location"`
	// Omit to keep the current photo, empty string to remove it
	Photo       *string         `json:"photo"`
}

func (sr *StoreRequest) ToDomain(userID int) *store.Store {
	return &store.Store{
		Name:        sr.Name,
		Description: sr.Description,
		Tags:        sr.Tags,
		Location: store.NewLocation(
			float64(sr.Location.Coordinates[0]),
			float64(sr.Location.Coordinates[1]),
			sr.Location.Address,
		),
		Photo:    sr.Photo,
		AuthorID: userID,
	}
}

type StoreResponse struct {
	Store store.Store `json:"store"`
}

type StoresResponse struct {
	Stores []store.Store `json:"stores"`
}

type NearbyStoresResponse struct {
	Stores []store.NearbyStore `json:"stores"`
}

type TopStoresResponse struct {
	Stores []store.TopStore `json:"stores"`
}
