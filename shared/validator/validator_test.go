package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"condovia/shared/failure"
	"condovia/shared/validator"
)

type createRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name"  validate:"required,max=10"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "valid body",
			body: `{"email":"resident@condo.test","name":"Alex"}`,
		},
		{
			name:    "malformed json",
			body:    `{"email":`,
			wantErr: true,
		},
		{
			name:    "missing required field",
			body:    `{"email":"resident@condo.test"}`,
			wantErr: true,
		},
		{
			name:    "invalid email",
			body:    `{"email":"not-an-email","name":"Alex"}`,
			wantErr: true,
		},
		{
			name:    "name over max",
			body:    `{"email":"resident@condo.test","name":"a very long name"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := createRequest{}
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !failure.IsCode(err, http.StatusBadRequest) {
					t.Errorf("expected bad request failure, got %v", err)
				}

				return
			}

			if err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

type uploadRequest struct {
	Photo string `json:"photo" validate:"omitempty,mimetypes=image/jpeg image/png,maxfilesize=5"`
}

func TestValidateCustomFileTags(t *testing.T) {
	tests := []struct {
		name    string
		photo   string
		wantErr bool
	}{
		{
			name:  "allowed png payload",
			photo: "data:image/png;base64,iVBORw0KGgo=",
		},
		{
			name:  "empty is allowed",
			photo: "",
		},
		{
			name:    "disallowed content type",
			photo:   "data:application/pdf;base64,JVBERi0xLjQK",
			wantErr: true,
		},
		{
			name:    "not a data uri",
			photo:   "plain-string",
			wantErr: true,
		},
		{
			name:    "payload over size limit",
			photo:   "data:image/png;base64," + strings.Repeat("A", 6*1024*1024),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := uploadRequest{Photo: tt.photo}
			err := validator.ValidateStruct(&req)

			if tt.wantErr && err == nil {
				t.Error("expected error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("expected no error, got %v", err)
			}
		})
	}
}

func TestValidateVar(t *testing.T) {
	if err := validator.ValidateVar("gym", "lowercase"); err != nil {
		t.Errorf("expected no error for lowercase value, got %v", err)
	}

	if err := validator.ValidateVar("Gym", "lowercase"); err == nil {
		t.Error("expected error for uppercase value")
	}
}
