package models

import "testing"

func TestHasAllPermissions(t *testing.T) {
	roles := []Role{
		{
			Name: "receptionist",
			Permissions: []RolePermission{
				{Permission: "booking.view"},
				{Permission: "booking.create"},
			},
		},
		{
			Name: "cashier",
			Permissions: []RolePermission{
				{Permission: "invoice.create"},
			},
		},
	}

	tests := []struct {
		name     string
		required []string
		want     bool
	}{
		{"subset of one role", []string{"booking.view"}, true},
		{"spread across roles", []string{"booking.create", "invoice.create"}, true},
		{"missing permission", []string{"booking.delete"}, false},
		{"partially missing", []string{"booking.view", "room.edit"}, false},
		{"empty requirement", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HasAllPermissions(tt.required, roles); got != tt.want {
				t.Errorf("HasAllPermissions(%v) = %v, want %v", tt.required, got, tt.want)
			}
		})
	}

	if HasAllPermissions([]string{"booking.view"}, nil) {
		t.Error("expected no roles to grant nothing")
	}
}

func TestCustomerTypeIsForeign(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"Foreign", true},
		{"foreign", true},
		{"FOREIGN", true},
		{" Foreign ", true},
		{"Domestic", false},
		{"", false},
	}
	for _, tt := range tests {
		ct := CustomerType{Name: tt.name}
		if got := ct.IsForeign(); got != tt.want {
			t.Errorf("IsForeign(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
