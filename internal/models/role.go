// ABOUTME: Role enum for the four dashboard viewer personas.
// ABOUTME: Handles display names, URL slugs, and lenient parsing.
package models

import (
	"errors"
	"fmt"
	"strings"
)

// Role is the viewer persona that selects which widgets render.
type Role string

const (
	RoleAthlete    Role = "Athlete"
	RoleCoach      Role = "Coach"
	RoleTrainer    Role = "Trainer"
	RoleTeamDoctor Role = "Team Doctor"
)

// AllRoles returns the roles in selector order.
var AllRoles = []Role{RoleAthlete, RoleCoach, RoleTrainer, RoleTeamDoctor}

// ErrUnknownRole is returned when a role name matches none of AllRoles.
var ErrUnknownRole = errors.New("unknown role")

// Slug returns the lowercase, dash-separated form used in URLs and CLI args.
func (r Role) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(r)), " ", "-")
}

// ParseRole accepts a display name or slug in any case.
// "team doctor", "team-doctor", "team_doctor" and "Team Doctor" all match.
func ParseRole(s string) (Role, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("_", "-", " ", "-").Replace(norm)
	for _, r := range AllRoles {
		if r.Slug() == norm {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}
