package utils

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeDataURI decodes a "data:<mime>;base64,<payload>" string, or a bare
// base64 string, into raw bytes. Returns the mime type when present.
func DecodeDataURI(s string) ([]byte, string, error) {
	mime := ""
	payload := s

	if strings.HasPrefix(s, "data:") {
		comma := strings.Index(s, ",")
		if comma < 0 {
			return nil, "", fmt.Errorf("malformed data URI: no comma separator")
		}
		header := s[len("data:"):comma]
		payload = s[comma+1:]

		if !strings.HasSuffix(header, ";base64") {
			return nil, "", fmt.Errorf("unsupported data URI encoding: %s", header)
		}
		mime = strings.TrimSuffix(header, ";base64")
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode base64 payload: %w", err)
	}
	return data, mime, nil
}

// EncodeDataURI builds a base64 data URI for the given mime type
func EncodeDataURI(mime string, data []byte) string {
	return fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(data))
}
