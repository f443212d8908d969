package models

import (
	"testing"
)

func TestRoleCapabilities(t *testing.T) {
	cases := []struct {
		role         Role
		review       bool
		applications bool
	}{
		{RoleVisitor, false, false},
		{RoleAdmin, true, false},
		{RoleSuperAdmin, true, true},
	}
	for _, tc := range cases {
		if got := tc.role.CanReviewPapers(); got != tc.review {
			t.Errorf("%s.CanReviewPapers() = %v, want %v", tc.role, got, tc.review)
		}
		if got := tc.role.CanViewApplications(); got != tc.applications {
			t.Errorf("%s.CanViewApplications() = %v, want %v", tc.role, got, tc.applications)
		}
	}

	if Role("editor").Valid() {
		t.Error("unknown role accepted")
	}
}

func TestValidPaperStatus(t *testing.T) {
	for _, s := range []string{"pending", "approved", "rejected"} {
		if !ValidPaperStatus(s) {
			t.Errorf("ValidPaperStatus(%q) = false", s)
		}
	}
	for _, s := range []string{"", "archived", "Approved", "withdrawn"} {
		if ValidPaperStatus(s) {
			t.Errorf("ValidPaperStatus(%q) = true", s)
		}
	}
}
