package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name   string   `json:"name" validate:"required,max=10"`
	Cities []string `json:"city_filters" validate:"omitempty,dive,city"`
	Type   string   `json:"notification_type" validate:"omitempty,oneof=offers newsletter"`
}

func TestValidate(t *testing.T) {
	v := New()

	tests := []struct {
		name    string
		req     sampleRequest
		wantErr string
	}{
		{name: "valid", req: sampleRequest{Name: "sale", Cities: []string{"Pune", " mumbai"}}},
		{name: "missing name", req: sampleRequest{}, wantErr: "name is required"},
		{name: "name too long", req: sampleRequest{Name: "a very long name"}, wantErr: "name must be at most 10"},
		{name: "unsupported city", req: sampleRequest{Name: "x", Cities: []string{"Atlantis"}}, wantErr: "unsupported city 'Atlantis'"},
		{name: "bad enum", req: sampleRequest{Name: "x", Type: "promos"}, wantErr: "notification_type must be one of [offers newsletter]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(&tt.req)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
