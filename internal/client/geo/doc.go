// Package geo provides one-shot position providers and a reverse geocoder
// for the compose screen. The CLI has no GPS: the position comes either from
// configuration or from an IP lookup service.
package geo
