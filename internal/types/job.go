package types

import (
	"time"

	"github.com/google/uuid"
)

// RoleFamily is the closed set of role-family labels assigned by the
// downstream role inferrer.
type RoleFamily string

// Role families.
const (
	RoleTesting         RoleFamily = "testing"
	RoleAI              RoleFamily = "ai"
	RoleFullstack       RoleFamily = "fullstack"
	RoleFrontend        RoleFamily = "frontend"
	RoleDevOps          RoleFamily = "devops"
	RoleData            RoleFamily = "data"
	RoleBusinessAnalyst RoleFamily = "business analyst"
	RoleProductManager  RoleFamily = "product manager"
	RoleMobile          RoleFamily = "mobile"
	RoleOther           RoleFamily = "other"
)

// ValidRoleFamily reports whether r is a declared role family.
func ValidRoleFamily(r RoleFamily) bool {
	switch r {
	case RoleTesting, RoleAI, RoleFullstack, RoleFrontend, RoleDevOps,
		RoleData, RoleBusinessAnalyst, RoleProductManager, RoleMobile, RoleOther:
		return true
	}
	return false
}

// Seniority is the closed set of seniority labels.
type Seniority string

// Seniority levels.
const (
	SeniorityGraduate     Seniority = "graduate"
	SeniorityJunior       Seniority = "junior"
	SeniorityIntermediate Seniority = "intermediate"
	SenioritySenior       Seniority = "senior"
	SeniorityManager      Seniority = "manager"
	SeniorityLead         Seniority = "lead"
	SeniorityArchitect    Seniority = "architect"
	SeniorityUnknown      Seniority = "unknown"
)

// ValidSeniority reports whether s is a declared seniority level.
func ValidSeniority(s Seniority) bool {
	switch s {
	case SeniorityGraduate, SeniorityJunior, SeniorityIntermediate,
		SenioritySenior, SeniorityManager, SeniorityLead,
		SeniorityArchitect, SeniorityUnknown:
		return true
	}
	return false
}

// Job is one captured posting. JDText is treated as an opaque string by the
// extraction engine; the capture layer owns fetching and HTML cleanup.
type Job struct {
	ID         uuid.UUID  `json:"id"`
	Source     string     `json:"source"`
	URL        string     `json:"url,omitempty"`
	Title      string     `json:"title"`
	Company    string     `json:"company"`
	Location   string     `json:"location,omitempty"`
	JDText     string     `json:"jd_text"`
	RoleFamily RoleFamily `json:"role_family,omitempty"`
	Seniority  Seniority  `json:"seniority,omitempty"`
	CapturedAt time.Time  `json:"captured_at"`
}
