package transmission

import "encoding/json"

// SessionHeader is the request and response header carrying the session token.
const SessionHeader = "X-Transmission-Session-Id"

// ResultSuccess is the result string of a successful response.
const ResultSuccess = "success"

// Request is the JSON envelope posted to the RPC endpoint.
type Request struct {
	Method    string         `json:"method"`
	Arguments map[string]any `json:"arguments"`
	Tag       int            `json:"tag,omitempty"`
}

// Response is the decoded daemon envelope of a successful call.
type Response struct {
	Result    string          `json:"result"`
	Arguments json.RawMessage `json:"arguments,omitempty"`
	Tag       int             `json:"tag,omitempty"`
}

// Decode unmarshals the returned arguments object into out.
func (r *Response) Decode(out any) error {
	if r == nil || len(r.Arguments) == 0 || string(r.Arguments) == "null" {
		return nil
	}
	return json.Unmarshal(r.Arguments, out)
}

// envelope mirrors Response but tracks whether result was present at all.
type envelope struct {
	Result    *string         `json:"result"`
	Arguments json.RawMessage `json:"arguments"`
	Tag       int             `json:"tag"`
}
