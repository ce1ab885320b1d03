package domain

import "errors"

var (
	// ErrUpstreamFetch marks transport failures and non-2xx responses from the forecast endpoint.
	ErrUpstreamFetch = errors.New("upstream fetch failed")

	// ErrMalformedPayload marks a forecast payload missing required fields.
	ErrMalformedPayload = errors.New("malformed upstream record")

	// ErrNoSamples is returned when there is nothing to render.
	ErrNoSamples = errors.New("no forecast samples")
)
