package compose

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
	"github.com/dmitrijs2005/diarykeeper/internal/logging"
)

const DefaultLocationTimeout = 10 * time.Second

// PlaceLabel formats a geocoded place. The full-width commas are part of the
// label format.
func PlaceLabel(p models.Place) string {
	if p.CityUnresolved {
		return FallbackPlaceLabel
	}
	return fmt.Sprintf("%s，%s，%s", p.City, p.Province, p.Country)
}

// LocationResolver fills coordinates and place label of a draft once.
type LocationResolver struct {
	position PositionProvider
	geocoder Geocoder
	store    *DraftStore
	timeout  time.Duration
	log      logging.Logger
}

func NewLocationResolver(position PositionProvider, geocoder Geocoder, store *DraftStore, timeout time.Duration, log logging.Logger) *LocationResolver {
	if timeout <= 0 {
		timeout = DefaultLocationTimeout
	}
	return &LocationResolver{
		position: position,
		geocoder: geocoder,
		store:    store,
		timeout:  timeout,
		log:      log.With("component", "location"),
	}
}

// Resolve asks for the position once and geocodes it. A position failure
// leaves the draft untouched; a geocoding failure still records the
// coordinates, with an empty label. Errors are logged and returned for
// callers that care.
func (r *LocationResolver) Resolve(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	c, err := r.position.CurrentPosition(ctx)
	if err != nil {
		r.log.Warn(ctx, "position unavailable, saving without location", "error", err)
		return fmt.Errorf("position: %w", err)
	}

	place, err := r.geocoder.ReverseGeocode(ctx, c.Longitude, c.Latitude)
	if err != nil {
		r.store.setLocation(c, "")
		r.log.Warn(ctx, "reverse geocoding failed", "lat", c.Latitude, "lon", c.Longitude, "error", err)
		return fmt.Errorf("geocode: %w", err)
	}

	label := PlaceLabel(place)
	r.store.setLocation(c, label)
	r.log.Debug(ctx, "location resolved", "label", label)
	return nil
}
