// internal/generator/generator.go

// Package generator runs the synthetic-organization simulation pass. Every
// organization is generated from its own child randomness context in a fixed
// draw order: organization fields, then the employee roster, then the enabled
// application set, then the per-user/per-app assignment and usage loop, then
// commercial terms. That order is a compatibility contract; reordering any
// stage changes every downstream draw for the organization.
package generator

import (
	"fmt"
	"time"

	"github.com/dangerclosesec/orgsim/internal/config"
	"github.com/dangerclosesec/orgsim/internal/model"
	"github.com/dangerclosesec/orgsim/internal/synth"
)

// Dataset holds the in-memory table buffers accumulated during a pass. Rows
// are immutable once appended.
type Dataset struct {
	Organizations []model.Organization
	Users         []model.User
	Groups        []model.Group
	Applications  []model.Application
	Assignments   []model.Assignment
	Logins        []model.LoginEvent
	Usage         []model.UsageEvent
	Contracts     []model.Contract
	Invoices      []model.Invoice
}

type Generator struct {
	params config.GenerateParams
	now    time.Time
}

type Option func(*Generator)

// WithNow pins the generation clock, primarily for tests.
func WithNow(now time.Time) Option {
	return func(g *Generator) {
		g.now = now.UTC().Truncate(time.Second)
	}
}

func New(params config.GenerateParams, opts ...Option) (*Generator, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generation parameters: %w", err)
	}
	g := &Generator{
		params: params,
		now:    time.Now().UTC().Truncate(time.Second),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Run executes a full generation pass and returns the accumulated tables.
// Organizations are generated sequentially, but each one draws only from its
// own derived child stream, so per-organization output is independent of the
// total organization count.
func (g *Generator) Run() (*Dataset, error) {
	root := synth.New(g.params.Seed)
	ds := &Dataset{}
	for i := 0; i < g.params.Orgs; i++ {
		g.generateOrg(root.Child(i), i, ds)
	}
	return ds, nil
}

func (g *Generator) generateOrg(ctx *synth.Context, index int, ds *Dataset) {
	org := g.organization(ctx, index)
	ds.Organizations = append(ds.Organizations, org)

	roster, admins := g.roster(ctx, org)
	for _, entry := range roster {
		ds.Users = append(ds.Users, entry.User)
	}
	ds.Groups = append(ds.Groups, departmentGroups(org)...)

	apps := g.applications(ctx, org)
	ds.Applications = append(ds.Applications, apps...)

	assignments, logins, usage, seats := g.simulate(ctx, org, roster, apps, admins)
	ds.Assignments = append(ds.Assignments, assignments...)
	ds.Logins = append(ds.Logins, logins...)
	ds.Usage = append(ds.Usage, usage...)

	// An organization that adopted nothing has no commercial footprint.
	if len(assignments) == 0 {
		return
	}
	contracts, invoices := g.commercial(ctx, org, apps, seats)
	ds.Contracts = append(ds.Contracts, contracts...)
	ds.Invoices = append(ds.Invoices, invoices...)
}

// daysAgo is the run clock shifted back by whole days.
func (g *Generator) daysAgo(days int) time.Time {
	return g.now.AddDate(0, 0, -days)
}
