package navigation

import (
	"errors"
	"strconv"
	"strings"

	"coordinator-console/internal/session"
)

var ErrLoginRequired = errors.New("login required")

// Section ids understood by the console.
const (
	SectionBrands            = "brands"
	SectionCampaigns         = "campaigns"
	SectionUsers             = "users"
	SectionNurses            = "nurses"
	SectionAdminBrands       = "admin-brands"
	SectionAssignedCampaigns = "assigned-campaigns"

	campaignPrefix = "campaign-"
)

type Kind string

const (
	KindBrandManagement    Kind = "brand-management"
	KindCampaignManagement Kind = "campaign-management"
	KindUserManagement     Kind = "user-management"
	KindAssignedCampaigns  Kind = "assigned-campaigns"
	KindAdminBrands        Kind = "admin-brands"
	KindCampaignDetail     Kind = "campaign-detail"
)

// Tab selects which user lists a user management view shows.
type Tab string

const (
	TabAdminsAndNurses Tab = "admins-nurses"
	TabNurses          Tab = "nurses"
)

// View is the section the console renders for a role and section id.
type View struct {
	Kind       Kind   `json:"kind"`
	Section    string `json:"section"`
	Tab        Tab    `json:"tab,omitempty"`
	CampaignID int64  `json:"campaign_id,omitempty"`
	Back       string `json:"back,omitempty"`
}

type NavEntry struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

var (
	brandManagement    = View{Kind: KindBrandManagement, Section: SectionBrands}
	campaignManagement = View{Kind: KindCampaignManagement, Section: SectionCampaigns}
	usersAll           = View{Kind: KindUserManagement, Section: SectionUsers, Tab: TabAdminsAndNurses}
	usersNurses        = View{Kind: KindUserManagement, Section: SectionNurses, Tab: TabNurses}
	assignedCampaigns  = View{Kind: KindAssignedCampaigns, Section: SectionAssignedCampaigns}
	adminBrands        = View{Kind: KindAdminBrands, Section: SectionAdminBrands}
)

// sectionTable holds the static mapping per role. Ids missing for a role
// resolve to that role's default.
var sectionTable = map[session.Role]map[string]View{
	session.RoleSuperAdmin: {
		SectionBrands:    brandManagement,
		SectionCampaigns: campaignManagement,
		SectionUsers:     usersAll,
		SectionNurses:    usersNurses,
	},
	session.RoleAdmin: {
		SectionBrands:      campaignManagement,
		SectionCampaigns:   campaignManagement,
		SectionUsers:       usersNurses,
		SectionNurses:      usersNurses,
		SectionAdminBrands: adminBrands,
	},
	session.RoleNurse: {},
}

var defaults = map[session.Role]View{
	session.RoleSuperAdmin: brandManagement,
	session.RoleAdmin:      campaignManagement,
	session.RoleNurse:      assignedCampaigns,
}

var navEntries = map[session.Role][]NavEntry{
	session.RoleSuperAdmin: {
		{ID: SectionBrands, Label: "Brands"},
		{ID: SectionCampaigns, Label: "Campaigns"},
		{ID: SectionUsers, Label: "Users"},
	},
	session.RoleAdmin: {
		{ID: SectionAdminBrands, Label: "My Brands"},
		{ID: SectionCampaigns, Label: "Campaigns"},
		{ID: SectionNurses, Label: "Nurses"},
	},
	session.RoleNurse: {
		{ID: SectionAssignedCampaigns, Label: "Assigned Campaigns"},
	},
}

// Resolve selects the view for the session's role. An absent or
// unauthenticated session is rejected before any mapping is evaluated.
func Resolve(sess *session.Session, activeSection string) (View, error) {
	if sess == nil || !sess.Valid() {
		return View{}, ErrLoginRequired
	}
	def, ok := defaults[sess.Role]
	if !ok {
		return View{}, session.ErrUnknownRole
	}

	if rest, found := strings.CutPrefix(activeSection, campaignPrefix); found {
		id, err := strconv.ParseInt(rest, 10, 64)
		if err != nil || id <= 0 {
			return def, nil
		}
		return View{
			Kind:       KindCampaignDetail,
			Section:    activeSection,
			CampaignID: id,
			Back:       backTarget(sess.Role),
		}, nil
	}

	if view, ok := sectionTable[sess.Role][activeSection]; ok {
		return view, nil
	}
	return def, nil
}

// DefaultSection returns the section id a role lands on after login.
func DefaultSection(role session.Role) string {
	return defaults[role].Section
}

// Navigation lists the entries visible to role.
func Navigation(role session.Role) []NavEntry {
	entries := navEntries[role]
	out := make([]NavEntry, len(entries))
	copy(out, entries)
	return out
}

func backTarget(role session.Role) string {
	if role == session.RoleNurse {
		return SectionAssignedCampaigns
	}
	return SectionCampaigns
}
