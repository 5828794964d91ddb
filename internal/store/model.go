package store

import (
	"fmt"
	"time"

	"github.com/xw1nchester/storefront-backend/internal/store/geo"
)

const (
	PageSize = 4

	NearMaxDistance = 10000.0
	NearLimit       = 10

	SearchLimit = 5

	TopLimit      = 10
	TopMinReviews = 2
)

const PointType = "Point"

type Location struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
	Address     string     `json:"address"`
}

func NewLocation(lng, lat float64, address string) Location {
	return Location{
		Type:        PointType,
		Coordinates: [2]float64{lng, lat},
		Address:     address,
	}
}

func (l Location) Point() geo.Point {
	return geo.Point{Lng: l.Coordinates[0], Lat: l.Coordinates[1]}
}

type Review struct {
	ID       int       `json:"id"`
	StoreID  int       `json:"store"`
	AuthorID *int      `json:"author"`
	Text     string    `json:"text"`
	Rating   int       `json:"rating"`
	Created  time.Time `json:"created"`
}

type Author struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Store.Reviews is never persisted: every repository read fills it from the
// reviews table.
type Store struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Created     time.Time `json:"created"`
	Location    Location  `json:"location"`
	Photo       *string   `json:"photo"`
	AuthorID    int       `json:"authorId"`
	Author      *Author   `json:"author,omitempty"`
	Reviews     []Review  `json:"reviews"`
}

type StoresPage struct {
	Stores []Store `json:"stores"`
	Page   int     `json:"page"`
	Pages  int     `json:"pages"`
	Count  int     `json:"count"`
}

type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

type TagListing struct {
	Tags   []TagCount `json:"tags"`
	Tag    string     `json:"tag,omitempty"`
	Stores []Store    `json:"stores"`
}

type NearbyStore struct {
	ID          int      `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Location    Location `json:"location"`
	Photo       *string  `json:"photo"`
	Reviews     []Review `json:"reviews"`
	Distance    float64  `json:"distance"`
}

type TopStore struct {
	ID            int      `json:"id"`
	Photo         *string  `json:"photo"`
	Name          string   `json:"name"`
	Slug          string   `json:"slug"`
	Reviews       []Review `json:"reviews"`
	AverageRating float64  `json:"averageRating"`
}

// PageOutOfRangeError is returned when a listing page past the last one is
// requested. Last is the page callers should be sent to.
type PageOutOfRangeError struct {
	Requested int
	Last      int
}

func (e *PageOutOfRangeError) Error() string {
	return fmt.Sprintf("page %d does not exist, last page is %d", e.Requested, e.Last)
}
