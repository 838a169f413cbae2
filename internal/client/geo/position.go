package geo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dmitrijs2005/diarykeeper/internal/client/models"
	"github.com/tidwall/gjson"
)

var ErrPositionUnavailable = errors.New("position unavailable")

// maxResponseSize caps the bytes read from lookup services.
const maxResponseSize = 1 << 20

// StaticPosition always reports the configured point. A zero point counts as
// not configured.
type StaticPosition struct {
	Coordinates models.Coordinates
}

func (p StaticPosition) CurrentPosition(ctx context.Context) (models.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return models.Coordinates{}, err
	}
	if p.Coordinates.IsZero() {
		return models.Coordinates{}, ErrPositionUnavailable
	}
	return p.Coordinates, nil
}

// HTTPPosition asks an IP geolocation endpoint for the caller's position. The
// response must be a JSON object with numeric "lat" and "lon"; a "status"
// other than "success", when present, is treated as a failure.
type HTTPPosition struct {
	URL    string
	Client *http.Client
}

func (p HTTPPosition) CurrentPosition(ctx context.Context) (models.Coordinates, error) {
	body, err := getJSON(ctx, p.Client, p.URL)
	if err != nil {
		return models.Coordinates{}, fmt.Errorf("position lookup: %w", err)
	}

	res := gjson.ParseBytes(body)
	if st := res.Get("status"); st.Exists() && st.String() != "success" {
		return models.Coordinates{}, fmt.Errorf("position lookup: status %q: %w", st.String(), ErrPositionUnavailable)
	}
	lat, lon := res.Get("lat"), res.Get("lon")
	if lat.Type != gjson.Number || lon.Type != gjson.Number {
		return models.Coordinates{}, fmt.Errorf("position lookup: missing lat/lon: %w", ErrPositionUnavailable)
	}
	return models.Coordinates{Latitude: lat.Float(), Longitude: lon.Float()}, nil
}

func getJSON(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	if client == nil {
		client = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	if !gjson.ValidBytes(body) {
		return nil, errors.New("invalid JSON response")
	}
	return body, nil
}
