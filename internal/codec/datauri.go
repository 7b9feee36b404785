// Package codec converts document bytes to and from the data-URI text
// form used by the backing store: `data:<mime>;base64,<payload>`.
package codec

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const (
	scheme      = "data:"
	base64Mark  = ";base64,"
	defaultMime = "application/octet-stream"
)

// DecodeError reports a data URI that does not match the expected
// self-describing format.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("codec: invalid data URI: %s", e.Reason)
}

// Encode produces the data-URI text form of the given bytes. The result
// is deterministic and lossless. An empty mimeType falls back to
// application/octet-stream.
func Encode(data []byte, mimeType string) string {
	if mimeType == "" {
		mimeType = defaultMime
	}
	return scheme + mimeType + base64Mark + base64.StdEncoding.EncodeToString(data)
}

// Decode is the inverse of Encode: it recovers the original bytes and
// MIME type from a data URI, or fails with a *DecodeError when the text
// does not carry the expected markers or a valid payload.
func Decode(uri string) ([]byte, string, error) {
	if !strings.HasPrefix(uri, scheme) {
		return nil, "", &DecodeError{Reason: "missing data: scheme"}
	}
	rest := uri[len(scheme):]

	idx := strings.Index(rest, base64Mark)
	if idx < 0 {
		return nil, "", &DecodeError{Reason: "missing base64 marker"}
	}

	mimeType := rest[:idx]
	if mimeType == "" {
		return nil, "", &DecodeError{Reason: "missing MIME type"}
	}

	payload := rest[idx+len(base64Mark):]
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", &DecodeError{Reason: fmt.Sprintf("malformed payload: %v", err)}
	}

	return data, mimeType, nil
}
