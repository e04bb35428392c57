// internal/generator/users.go
package generator

import (
	"fmt"
	"strings"
	"time"

	"github.com/dangerclosesec/orgsim/internal/catalog"
	"github.com/dangerclosesec/orgsim/internal/model"
	"github.com/dangerclosesec/orgsim/internal/synth"
)

var (
	statusChoices = []model.UserStatus{model.StatusActive, model.StatusSuspended, model.StatusDeprovisioned}
	statusWeights = []float64{0.85, 0.10, 0.05}

	suspendedActivityChoices = []model.ActivityLevel{model.ActivityDormant, model.ActivityInactive}
	suspendedActivityWeights = []float64{0.6, 0.4}

	activeActivityChoices = []model.ActivityLevel{model.ActivityActive, model.ActivityDormant, model.ActivityInactive}
	activeActivityWeights = []float64{0.7, 0.2, 0.1}
)

// rosterEntry pairs a persisted User row with its latent activity level,
// which only the assignment/usage stage consumes.
type rosterEntry struct {
	User     model.User
	Activity model.ActivityLevel
}

// roster generates the organization's employees in index order. The returned
// admin pool holds the user ids drawn as admins, or the "system" sentinel
// when the organization has none, and is the source of assigned_by values.
func (g *Generator) roster(ctx *synth.Context, org model.Organization) ([]rosterEntry, []string) {
	domain := slugify(org.Name)
	entries := make([]rosterEntry, 0, org.EmployeeCount)
	var admins []string

	for i := 0; i < org.EmployeeCount; i++ {
		userID := fmt.Sprintf("%s_user_%04d", org.OrgID, i)
		firstName := ctx.FirstName()
		lastName := ctx.LastName()
		department := synth.WeightedPick(ctx, catalog.Departments, catalog.DepartmentWeights)
		status := synth.WeightedPick(ctx, statusChoices, statusWeights)
		activity := g.activityLevel(ctx, status)
		createdAt := ctx.Time(org.CreatedAt.Time, g.daysAgo(7))
		lastLogin := g.lastLogin(ctx, status, activity, createdAt)
		isAdmin := ctx.Bool(0.05)
		if isAdmin {
			admins = append(admins, userID)
		}

		entries = append(entries, rosterEntry{
			User: model.User{
				OrgID:       org.OrgID,
				UserID:      userID,
				FirstName:   firstName,
				LastName:    lastName,
				Email:       strings.ToLower(fmt.Sprintf("%s.%s@%s.com", firstName, lastName, domain)),
				Department:  department,
				Title:       ctx.JobTitle(),
				Status:      status,
				IsAdmin:     isAdmin,
				CreatedAt:   model.NewTimestamp(createdAt),
				LastLoginAt: lastLogin,
			},
			Activity: activity,
		})
	}

	if len(admins) == 0 {
		admins = []string{"system"}
	}
	return entries, admins
}

// activityLevel derives the latent state conditional on account status:
// deprovisioned accounts are always inactive, suspended accounts are never
// active.
func (g *Generator) activityLevel(ctx *synth.Context, status model.UserStatus) model.ActivityLevel {
	switch status {
	case model.StatusDeprovisioned:
		return model.ActivityInactive
	case model.StatusSuspended:
		return synth.WeightedPick(ctx, suspendedActivityChoices, suspendedActivityWeights)
	default:
		return synth.WeightedPick(ctx, activeActivityChoices, activeActivityWeights)
	}
}

// lastLogin draws the last-seen timestamp from the activity-level-specific
// window. Only non-active accounts in the inactive branch may produce a null,
// with 15% probability. The window start is floored at the account's creation
// so last_login_at never precedes created_at; an account created after its
// whole window collapses to its creation instant.
func (g *Generator) lastLogin(ctx *synth.Context, status model.UserStatus, activity model.ActivityLevel, createdAt time.Time) *model.Timestamp {
	var start, end time.Time
	switch activity {
	case model.ActivityActive:
		start, end = g.daysAgo(30), g.now
	case model.ActivityDormant:
		start, end = g.daysAgo(90), g.daysAgo(31)
	default:
		if status != model.StatusActive && ctx.Bool(0.15) {
			return nil
		}
		start, end = g.daysAgo(365), g.daysAgo(91)
	}
	if start.Before(createdAt) {
		start = createdAt
	}
	at := model.NewTimestamp(ctx.Time(start, end))
	return &at
}
