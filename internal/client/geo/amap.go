package geo

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
	"github.com/tidwall/gjson"
)

const DefaultAMapURL = "https://restapi.amap.com/v3/geocode/regeo"

var ErrGeocodeFailed = errors.New("reverse geocoding failed")

// AMapGeocoder calls the AMap reverse geocoding API. AMap reports city as an
// empty array for places without a single city value; that shape sets
// Place.CityUnresolved.
type AMapGeocoder struct {
	BaseURL string
	Key     string
	Client  *http.Client
}

func (g AMapGeocoder) ReverseGeocode(ctx context.Context, longitude, latitude float64) (models.Place, error) {
	base := g.BaseURL
	if base == "" {
		base = DefaultAMapURL
	}
	u, err := url.Parse(base)
	if err != nil {
		return models.Place{}, fmt.Errorf("geocoder url: %w", err)
	}
	q := u.Query()
	q.Set("key", g.Key)
	q.Set("location", formatCoord(longitude)+","+formatCoord(latitude))
	q.Set("output", "JSON")
	u.RawQuery = q.Encode()

	body, err := getJSON(ctx, g.Client, u.String())
	if err != nil {
		return models.Place{}, fmt.Errorf("%w: %w", ErrGeocodeFailed, err)
	}

	res := gjson.ParseBytes(body)
	if res.Get("status").String() != "1" {
		return models.Place{}, fmt.Errorf("%w: %s", ErrGeocodeFailed, res.Get("info").String())
	}
	comp := res.Get("regeocode.addressComponent")
	if !comp.IsObject() {
		return models.Place{}, fmt.Errorf("%w: no address component", ErrGeocodeFailed)
	}

	place := models.Place{
		Province: scalar(comp.Get("province")),
		Country:  scalar(comp.Get("country")),
	}
	if city := comp.Get("city"); city.IsArray() {
		place.CityUnresolved = true
	} else {
		place.City = city.String()
	}
	return place, nil
}

// scalar returns "" for list-shaped values instead of their JSON text.
func scalar(r gjson.Result) string {
	if r.IsArray() || r.IsObject() {
		return ""
	}
	return r.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
