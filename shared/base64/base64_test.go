package base64_test

import (
	"errors"
	"testing"

	"condovia/shared/base64"
)

func TestGetContentType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "valid image png",
			input:    "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNk+M9QDwADhgGAWjR9awAAAABJRU5ErkJggg==",
			expected: "image/png",
		},
		{
			name:     "valid application pdf",
			input:    "data:application/pdf;base64,JVBERi0xLjQK",
			expected: "application/pdf",
		},
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no base64 marker",
			input:    "data:image/png,iVBORw0KGgo=",
			expected: "",
		},
		{
			name:     "only data prefix with base64",
			input:    "data:;base64,",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := base64.GetContentType(tt.input)
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name            string
		input           string
		wantContentType string
		wantData        string
		wantErr         bool
	}{
		{
			name:            "valid text payload",
			input:           "data:text/plain;base64,SGVsbG8gV29ybGQ=",
			wantContentType: "text/plain",
			wantData:        "Hello World",
		},
		{
			name:    "missing data prefix",
			input:   "SGVsbG8gV29ybGQ=",
			wantErr: true,
		},
		{
			name:    "missing base64 marker",
			input:   "data:text/plain,SGVsbG8=",
			wantErr: true,
		},
		{
			name:    "invalid base64 payload",
			input:   "data:text/plain;base64,!!!not-base64!!!",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, contentType, err := base64.Decode(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !errors.Is(err, base64.ErrInvalidDataURI) {
					t.Errorf("expected ErrInvalidDataURI, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if contentType != tt.wantContentType {
				t.Errorf("expected content type %q, got %q", tt.wantContentType, contentType)
			}
			if string(data) != tt.wantData {
				t.Errorf("expected data %q, got %q", tt.wantData, string(data))
			}
		})
	}
}
