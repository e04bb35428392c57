// internal/generator/org.go
package generator

import (
	"fmt"
	"strings"

	"github.com/dangerclosesec/orgsim/internal/catalog"
	"github.com/dangerclosesec/orgsim/internal/model"
	"github.com/dangerclosesec/orgsim/internal/synth"
)

// Employee sizing: log-normal in log-space, resampled while out of bounds.
const (
	sizeMu         = 5.5
	sizeSigma      = 0.45
	resampleBudget = 64
	orgAgeMinDays  = 30
	orgAgeMaxDays  = 365 * 5
)

func (g *Generator) organization(ctx *synth.Context, index int) model.Organization {
	count := g.employeeCount(ctx)
	return model.Organization{
		OrgID:         fmt.Sprintf("org_%03d", index),
		Name:          ctx.Company(),
		Industry:      synth.Pick(ctx, catalog.Industries),
		Region:        synth.Pick(ctx, catalog.Regions),
		EmployeeCount: count,
		EmployeeBand:  model.EmployeeBand(count),
		CreatedAt:     model.NewTimestamp(ctx.Time(g.daysAgo(orgAgeMaxDays), g.daysAgo(orgAgeMinDays))),
	}
}

// employeeCount samples the log-normal sizing distribution, resampling draws
// that fall outside the configured bounds so the in-range shape is preserved.
// Once the attempt budget is exhausted (bounds far into a tail), the last
// draw is clamped so the count invariant holds unconditionally.
func (g *Generator) employeeCount(ctx *synth.Context) int {
	lo := float64(g.params.MinEmployees)
	hi := float64(g.params.MaxEmployees)
	var draw float64
	for i := 0; i < resampleBudget; i++ {
		draw = ctx.LogNormal(sizeMu, sizeSigma)
		if draw >= lo && draw <= hi {
			return int(draw)
		}
	}
	if draw < lo {
		return g.params.MinEmployees
	}
	return g.params.MaxEmployees
}

// slugify reduces a company name to a short lowercase alphanumeric domain
// stem, falling back to "org" for names with no usable characters.
func slugify(value string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(value) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	slug := b.String()
	if slug == "" {
		return "org"
	}
	if len(slug) > 15 {
		return slug[:15]
	}
	return slug
}

// departmentGroups emits one team container per department, members or not.
func departmentGroups(org model.Organization) []model.Group {
	groups := make([]model.Group, 0, len(catalog.Departments))
	for _, dept := range catalog.Departments {
		groups = append(groups, model.Group{
			OrgID:      org.OrgID,
			GroupID:    fmt.Sprintf("%s_group_%s", org.OrgID, slugify(dept)),
			Name:       dept + " Team",
			Department: dept,
		})
	}
	return groups
}
