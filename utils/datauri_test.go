package utils

import (
	"bytes"
	"encoding/base64"
	"testing"
)

func TestDecodeDataURI(t *testing.T) {
	payload := []byte("%PDF-1.4 fake")
	uri := "data:application/pdf;base64," + base64.StdEncoding.EncodeToString(payload)

	data, mime, err := DecodeDataURI(uri)
	if err != nil {
		t.Fatalf("DecodeDataURI: %v", err)
	}
	if mime != "application/pdf" {
		t.Errorf("mime = %q, want application/pdf", mime)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("data = %q, want %q", data, payload)
	}
}

func TestDecodeDataURIBareBase64(t *testing.T) {
	payload := []byte{0x89, 'P', 'N', 'G'}

	data, mime, err := DecodeDataURI(base64.StdEncoding.EncodeToString(payload))
	if err != nil {
		t.Fatalf("DecodeDataURI: %v", err)
	}
	if mime != "" {
		t.Errorf("mime = %q, want empty for bare base64", mime)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("data = %v, want %v", data, payload)
	}
}

func TestDecodeDataURIErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"no comma", "data:image/png;base64"},
		{"non-base64 encoding", "data:text/plain,hello"},
		{"bad payload", "data:image/png;base64,!!!not-base64!!!"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := DecodeDataURI(tt.input); err == nil {
				t.Errorf("expected error for %q", tt.input)
			}
		})
	}
}

func TestEncodeDataURIRoundTrip(t *testing.T) {
	payload := []byte("jpeg bytes here")
	uri := EncodeDataURI("image/jpeg", payload)

	data, mime, err := DecodeDataURI(uri)
	if err != nil {
		t.Fatalf("DecodeDataURI: %v", err)
	}
	if mime != "image/jpeg" || !bytes.Equal(data, payload) {
		t.Errorf("round trip = (%q, %q), want original payload and mime", data, mime)
	}
}
