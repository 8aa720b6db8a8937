package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleAllowed(t *testing.T) {
	tests := []struct {
		name    string
		role    string
		allowed []string
		want    bool
	}{
		{"manager passes every gate", "Manager", []string{"Cashier"}, true},
		{"manager passes the empty gate", "Manager", nil, true},
		{"listed role passes", "Cashier", []string{"Chef", "Cashier"}, true},
		{"unlisted role fails", "Customer", []string{"Chef", "Cashier"}, false},
		{"empty role fails", "", []string{"Cashier"}, false},
		{"non-manager fails the empty gate", "Cashier", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoleAllowed(tt.role, tt.allowed...))
		})
	}
}
