package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupplier_Validate(t *testing.T) {
	tests := []struct {
		name     string
		supplier Supplier
		wantErr  bool
	}{
		{"valid supplier", Supplier{Name: "Acme Trading", Email: "sales@acme.example"}, false},
		{"email is optional", Supplier{Name: "Acme Trading"}, false},
		{"missing name", Supplier{Email: "sales@acme.example"}, true},
		{"whitespace name", Supplier{Name: "   "}, true},
		{"malformed email", Supplier{Name: "Acme Trading", Email: "not-an-email"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.supplier.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
