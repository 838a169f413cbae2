package models

import "strings"

// Media is an encoded image payload attached to a draft.
type Media struct {
	Name        string
	ContentType string
	Data        []byte
}

// IsImage reports whether the payload declares an image content type.
func (m Media) IsImage() bool {
	return strings.HasPrefix(m.ContentType, "image/")
}

// ImageRef is a reference returned by the object store for an uploaded payload.
type ImageRef string

// Coordinates is a geographic point in decimal degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// IsZero reports whether the point is still the (0,0) default.
func (c Coordinates) IsZero() bool {
	return c.Latitude == 0 && c.Longitude == 0
}

// Place is the result of reverse geocoding.
type Place struct {
	City     string
	Province string
	Country  string
	// CityUnresolved is set when the geocoder returned no single city value.
	CityUnresolved bool
}
