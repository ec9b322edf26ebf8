package models

import (
	"encoding/json"
	"strings"
	"testing"

	"saira_acad/internal/auth"
)

var (
	_ auth.Account = (*User)(nil)
	_ auth.Account = (*Admin)(nil)
	_ auth.Account = (*SchoolPartner)(nil)

	_ ResumeHolder = TeacherApplication{}
	_ ResumeHolder = JobApplication{}
)

func TestAccountsCarryTheirRole(t *testing.T) {
	tests := []struct {
		acct auth.Account
		role auth.Role
	}{
		{&User{Base: Base{ID: 3}, Status: StatusActive}, auth.RoleUser},
		{&Admin{Base: Base{ID: 4}, Status: StatusActive}, auth.RoleAdmin},
		{&SchoolPartner{Base: Base{ID: 5}, Status: StatusActive}, auth.RolePartner},
	}

	for _, tc := range tests {
		id := tc.acct.Identity()
		if tc.acct.Role() != tc.role || id.Type != tc.role || id.ID != tc.acct.AccountID() {
			t.Fatalf("%T: role=%s identity=%+v", tc.acct, tc.acct.Role(), id)
		}
		if !tc.acct.Active() {
			t.Fatalf("%T should be active", tc.acct)
		}
	}

	if (&SchoolPartner{Status: StatusInactive}).Active() {
		t.Fatalf("inactive partner reported active")
	}
	if (&User{Status: StatusSuspended}).Active() {
		t.Fatalf("suspended user reported active")
	}
}

func TestStatusSets(t *testing.T) {
	sets := map[string][]string{
		"enrollment":   Enrollment{}.Statuses(),
		"requirement":  SchoolRequirement{}.Statuses(),
		"teacher":      TeacherApplication{}.Statuses(),
		"mentor":       MentorApplication{}.Statuses(),
		"job":          JobApplication{}.Statuses(),
		"consultation": Consultation{}.Statuses(),
		"contact":      Contact{}.Statuses(),
	}
	for name, set := range sets {
		if len(set) < 2 {
			t.Fatalf("%s: status set too small: %v", name, set)
		}
		if OneOf("", set) || OneOf("archived", set) {
			t.Fatalf("%s: unexpected member in %v", name, set)
		}
	}

	if !OneOf(StatusSuspended, UserStatuses) || OneOf(StatusSuspended, PartnerStatuses) {
		t.Fatalf("suspended belongs to users only")
	}
	if !OneOf(AdminRoleSuper, AdminRoles) || OneOf("owner", AdminRoles) {
		t.Fatalf("admin roles: %v", AdminRoles)
	}
	if OneOf(ContactTypePartner, ContactTypes) || OneOf(ContactTypeEducator, ContactTypes) {
		t.Fatalf("partner and educator contacts have their own tables")
	}
	if !OneOf("PhD", Qualifications) {
		t.Fatalf("qualifications: %v", Qualifications)
	}
	if !OneOf("leadership", Programs) || OneOf("Leadership", Programs) {
		t.Fatalf("programs: %v", Programs)
	}
}

func TestAllListsEveryTable(t *testing.T) {
	if n := len(All()); n != 12 {
		t.Fatalf("All() returned %d models", n)
	}
}

func TestAdminRoleSerializesAsRole(t *testing.T) {
	admin := &Admin{Username: "ops", AdminRole: AdminRoleSuper}
	raw, err := json.Marshal(admin)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"role":"super-admin"`) {
		t.Fatalf("json=%s", raw)
	}
	if admin.Role() != auth.RoleAdmin {
		t.Fatalf("account role=%s", admin.Role())
	}
}
