package client

import (
	"encoding/json"
	"fmt"
	"io"
)

// DecodeError reports a response that parsed as JSON but violated the
// expected schema. Failing fast here keeps malformed upstream payloads
// from propagating zero values into calling code.
type DecodeError struct {
	Field  string // path of the offending field
	Reason string // what was wrong with it
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode: field %s: %s", e.Field, e.Reason)
}

// decodeBody strictly decodes a JSON response body into out. Unknown
// fields are tolerated (the server may grow its responses) but malformed
// JSON becomes a DecodeError rather than a bare unmarshal error.
func decodeBody(r io.Reader, out any) error {
	dec := json.NewDecoder(r)
	if err := dec.Decode(out); err != nil {
		return &DecodeError{Field: "(body)", Reason: err.Error()}
	}
	return nil
}
