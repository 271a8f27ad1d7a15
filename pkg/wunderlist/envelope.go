package wunderlist

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/samvad-hq/wunderlist-go/pkg/httpclient"
)

// Descriptor is one pending API call.
type Descriptor struct {
	Method string
	// Path is relative to the base URL and may carry a query string.
	Path string
	// Body, when non-nil, is sent as the JSON payload.
	Body any
	// ContentType overrides the default application/json header.
	ContentType string
}

// Envelope is whatever the service answered.
type Envelope struct {
	StatusCode int         `json:"status_code"`
	Header     http.Header `json:"-"`
	Raw        []byte      `json:"-"`
	// Data is the decoded JSON body. It is nil for empty or non-JSON bodies
	// (the avatar endpoint answers with an image).
	Data any `json:"data"`

	// decoded marks Data as handed over by the transport rather than parsed from Raw.
	decoded bool
}

func newEnvelope(resp httpclient.Response) *Envelope {
	env := &Envelope{
		StatusCode: resp.StatusCode(),
		Header:     resp.Header(),
		Raw:        resp.Body(),
	}

	if dr, ok := resp.(httpclient.DecodedResponse); ok {
		if v, ok := dr.Decoded(); ok {
			env.Data = v
			env.decoded = true
			return env
		}
	}

	if len(env.Raw) > 0 {
		var v any
		if err := json.Unmarshal(env.Raw, &v); err == nil {
			env.Data = v
		}
	}
	return env
}

// IsRemoteError reports whether the service answered with a 4xx or 5xx status.
// Such responses are still delivered as envelopes, never as Go errors.
func (e *Envelope) IsRemoteError() bool {
	return e != nil && e.StatusCode >= http.StatusBadRequest
}

// Decode unmarshals the response body into v. A body already decoded by the
// transport takes precedence over Raw.
func (e *Envelope) Decode(v any) error {
	if e == nil {
		return fmt.Errorf("decode envelope: nil envelope")
	}
	raw := e.Raw
	if e.Data != nil && (e.decoded || len(raw) == 0) {
		var err error
		if raw, err = json.Marshal(e.Data); err != nil {
			return fmt.Errorf("decode envelope: %w", err)
		}
	}
	if len(raw) == 0 {
		return fmt.Errorf("decode envelope: empty body")
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode envelope: %w", err)
	}
	return nil
}
