package navigation

import (
	"errors"
	"testing"

	"coordinator-console/internal/session"
)

func sessionFor(role session.Role) *session.Session {
	return &session.Session{Email: "someone@company.com", Role: role, Token: "t", IsAuthenticated: true}
}

func TestResolve_Table(t *testing.T) {
	tests := []struct {
		role    session.Role
		section string
		want    View
	}{
		{session.RoleSuperAdmin, "brands", brandManagement},
		{session.RoleSuperAdmin, "campaigns", campaignManagement},
		{session.RoleSuperAdmin, "users", usersAll},
		{session.RoleSuperAdmin, "nurses", usersNurses},
		{session.RoleSuperAdmin, "", brandManagement},
		{session.RoleSuperAdmin, "admin-brands", brandManagement},
		{session.RoleSuperAdmin, "assigned-campaigns", brandManagement},

		{session.RoleAdmin, "brands", campaignManagement},
		{session.RoleAdmin, "campaigns", campaignManagement},
		{session.RoleAdmin, "users", usersNurses},
		{session.RoleAdmin, "nurses", usersNurses},
		{session.RoleAdmin, "admin-brands", adminBrands},
		{session.RoleAdmin, "reports", campaignManagement},

		{session.RoleNurse, "brands", assignedCampaigns},
		{session.RoleNurse, "campaigns", assignedCampaigns},
		{session.RoleNurse, "users", assignedCampaigns},
		{session.RoleNurse, "nurses", assignedCampaigns},
		{session.RoleNurse, "admin-brands", assignedCampaigns},
		{session.RoleNurse, "assigned-campaigns", assignedCampaigns},
		{session.RoleNurse, "", assignedCampaigns},
	}

	for _, tt := range tests {
		t.Run(string(tt.role)+"/"+tt.section, func(t *testing.T) {
			got, err := Resolve(sessionFor(tt.role), tt.section)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Resolve(%s, %q) = %+v, want %+v", tt.role, tt.section, got, tt.want)
			}
		})
	}
}

func TestResolve_TotalOverRolesAndKnownSections(t *testing.T) {
	roles := []session.Role{session.RoleSuperAdmin, session.RoleAdmin, session.RoleNurse}
	sections := []string{
		SectionBrands, SectionCampaigns, SectionUsers, SectionNurses,
		SectionAdminBrands, SectionAssignedCampaigns, "campaign-7", "", "unknown",
	}
	for _, role := range roles {
		for _, section := range sections {
			view, err := Resolve(sessionFor(role), section)
			if err != nil {
				t.Errorf("Resolve(%s, %q) returned error %v", role, section, err)
				continue
			}
			if view.Kind == "" || view.Section == "" {
				t.Errorf("Resolve(%s, %q) returned empty view %+v", role, section, view)
			}
		}
	}
}

func TestResolve_CampaignDetail(t *testing.T) {
	tests := []struct {
		role session.Role
		back string
	}{
		{session.RoleSuperAdmin, SectionCampaigns},
		{session.RoleAdmin, SectionCampaigns},
		{session.RoleNurse, SectionAssignedCampaigns},
	}
	for _, tt := range tests {
		got, err := Resolve(sessionFor(tt.role), "campaign-42")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := View{Kind: KindCampaignDetail, Section: "campaign-42", CampaignID: 42, Back: tt.back}
		if got != want {
			t.Errorf("role %s: got %+v, want %+v", tt.role, got, want)
		}
	}
}

func TestResolve_CampaignDetailBadIDFallsBack(t *testing.T) {
	for _, section := range []string{"campaign-", "campaign-abc", "campaign-0", "campaign--3"} {
		got, err := Resolve(sessionFor(session.RoleAdmin), section)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != campaignManagement {
			t.Errorf("%q: expected admin default, got %+v", section, got)
		}
	}
}

func TestResolve_LoginRequired(t *testing.T) {
	tests := []struct {
		name string
		sess *session.Session
	}{
		{"absent", nil},
		{"not authenticated", &session.Session{Role: session.RoleSuperAdmin, Token: "t"}},
		{"no token", &session.Session{Role: session.RoleSuperAdmin, IsAuthenticated: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.sess, "campaign-1")
			if !errors.Is(err, ErrLoginRequired) {
				t.Errorf("expected ErrLoginRequired, got %v", err)
			}
		})
	}
}

func TestResolve_UnknownRole(t *testing.T) {
	_, err := Resolve(&session.Session{Role: "owner", Token: "t", IsAuthenticated: true}, "brands")
	if !errors.Is(err, session.ErrUnknownRole) {
		t.Errorf("expected ErrUnknownRole, got %v", err)
	}
}

func TestDefaultSection(t *testing.T) {
	if got := DefaultSection(session.RoleSuperAdmin); got != SectionBrands {
		t.Errorf("superAdmin default = %q", got)
	}
	if got := DefaultSection(session.RoleAdmin); got != SectionCampaigns {
		t.Errorf("admin default = %q", got)
	}
	if got := DefaultSection(session.RoleNurse); got != SectionAssignedCampaigns {
		t.Errorf("nurse default = %q", got)
	}
}

func TestNavigation(t *testing.T) {
	nurse := Navigation(session.RoleNurse)
	if len(nurse) != 1 || nurse[0].ID != SectionAssignedCampaigns {
		t.Errorf("unexpected nurse navigation %+v", nurse)
	}

	admin := Navigation(session.RoleAdmin)
	admin[0].Label = "changed"
	if Navigation(session.RoleAdmin)[0].Label != "My Brands" {
		t.Error("Navigation must return a copy")
	}

	// Every visible entry resolves to a view for the same role without falling back.
	for _, role := range []session.Role{session.RoleSuperAdmin, session.RoleAdmin, session.RoleNurse} {
		for _, entry := range Navigation(role) {
			view, _ := Resolve(sessionFor(role), entry.ID)
			if view.Section != entry.ID {
				t.Errorf("%s entry %q resolved to section %q", role, entry.ID, view.Section)
			}
		}
	}
}
