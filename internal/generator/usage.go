// internal/generator/usage.go
package generator

import (
	"fmt"
	"time"

	"github.com/dangerclosesec/orgsim/internal/catalog"
	"github.com/dangerclosesec/orgsim/internal/model"
	"github.com/dangerclosesec/orgsim/internal/synth"
)

// recentLoginDays bounds how stale a last login may be before the pair stops
// producing events at all.
const recentLoginDays = 90

// simulate walks every (user, enabled app) pair in roster x app order and
// probabilistically produces license assignments, login events, and usage
// events. The returned seat map counts distinct assigned users per app id
// and feeds the commercial stage.
func (g *Generator) simulate(
	ctx *synth.Context,
	org model.Organization,
	roster []rosterEntry,
	apps []model.Application,
	admins []string,
) ([]model.Assignment, []model.LoginEvent, []model.UsageEvent, map[string]int) {
	var (
		assignments []model.Assignment
		logins      []model.LoginEvent
		usage       []model.UsageEvent
	)
	seats := make(map[string]int)

	for _, entry := range roster {
		user := entry.User
		for _, app := range apps {
			catalogEntry, _ := catalog.ByKey(app.AppKey)

			rate := adoptionRate(ctx, catalogEntry, user.Department)
			if ctx.Float64() > rate {
				continue
			}

			assignments = append(assignments, model.Assignment{
				OrgID:        org.OrgID,
				AssignmentID: fmt.Sprintf("%s_%s", user.UserID, app.AppID),
				UserID:       user.UserID,
				AppID:        app.AppID,
				AssignedAt:   model.NewTimestamp(ctx.Time(user.CreatedAt.Time, g.daysAgo(1))),
				AssignedBy:   synth.Pick(ctx, admins),
			})
			seats[app.AppID]++

			if user.LastLoginAt == nil || user.LastLoginAt.Before(g.daysAgo(recentLoginDays)) {
				continue
			}

			loginCount := g.loginCount(ctx, entry.Activity)
			if loginCount == 0 {
				continue
			}
			if ctx.Float64() > usageProbability(ctx, catalogEntry, user.Department) {
				continue
			}

			lastLogin := user.LastLoginAt.Time
			windowStart := lastLogin.AddDate(0, 0, -30)
			if earliest := g.daysAgo(recentLoginDays); windowStart.Before(earliest) {
				windowStart = earliest
			}

			for i := 0; i < loginCount; i++ {
				loginTS := ctx.Time(windowStart, lastLogin)
				logins = append(logins, model.LoginEvent{
					OrgID:     org.OrgID,
					LoginID:   fmt.Sprintf("%s_%s_%d", user.UserID, app.AppID, i),
					UserID:    user.UserID,
					AppID:     app.AppID,
					LoginTS:   model.NewTimestamp(loginTS),
					Device:    synth.Pick(ctx, catalog.Devices),
					IPAddress: ctx.IPv4(),
				})

				// Each login independently spawns at most one usage event.
				if !ctx.Bool(0.70) {
					continue
				}
				usage = append(usage, model.UsageEvent{
					OrgID:           org.OrgID,
					UsageID:         fmt.Sprintf("%s_%s_%d", user.UserID, app.AppID, i),
					UserID:          user.UserID,
					AppID:           app.AppID,
					ActivityTS:      model.NewTimestamp(loginTS.Add(time.Duration(ctx.IntBetween(1, 90)) * time.Minute)),
					ActivityType:    synth.Pick(ctx, catalog.ActivityTypesFor(app.Category)),
					DurationMinutes: ctx.IntBetween(5, 180),
				})
			}
		}
	}
	return assignments, logins, usage, seats
}

// adoptionRate is the probability a user is granted a license: high for core
// apps, moderate when the app targets the user's department, low otherwise.
func adoptionRate(ctx *synth.Context, app catalog.App, department string) float64 {
	switch {
	case app.Core:
		return ctx.Uniform(0.80, 0.95)
	case app.Targets(department):
		return ctx.Uniform(0.45, 0.70)
	default:
		return ctx.Uniform(0.10, 0.30)
	}
}

// usageProbability is the conditional probability that an assigned, recently
// seen user produces events for the pair; same tiering as adoption with its
// own ranges.
func usageProbability(ctx *synth.Context, app catalog.App, department string) float64 {
	switch {
	case app.Core:
		return ctx.Uniform(0.70, 0.90)
	case app.Targets(department):
		return ctx.Uniform(0.40, 0.70)
	default:
		return ctx.Uniform(0.15, 0.35)
	}
}

// loginCount keys event volume on the latent activity level.
func (g *Generator) loginCount(ctx *synth.Context, activity model.ActivityLevel) int {
	switch activity {
	case model.ActivityActive:
		return ctx.IntBetween(6, 20)
	case model.ActivityDormant:
		return ctx.IntBetween(1, 3)
	default:
		return 0
	}
}
