// internal/generator/apps.go
package generator

import (
	"fmt"

	"github.com/dangerclosesec/orgsim/internal/catalog"
	"github.com/dangerclosesec/orgsim/internal/model"
	"github.com/dangerclosesec/orgsim/internal/synth"
)

const (
	optionalAppsMin = 6
	optionalAppsMax = 9
)

// applications selects the organization's enabled app set: Slack, Okta, Zoom,
// exactly one of the two productivity suites, plus 6-9 optional catalog apps
// drawn without replacement from the remainder.
func (g *Generator) applications(ctx *synth.Context, org model.Organization) []model.Application {
	suiteKey := synth.Pick(ctx, catalog.SuiteKeys)
	selectedKeys := []string{catalog.KeySlack, catalog.KeyOkta, catalog.KeyZoom, suiteKey}

	mandatory := map[string]bool{
		catalog.KeySlack:           true,
		catalog.KeyOkta:            true,
		catalog.KeyZoom:            true,
		catalog.KeyGoogleWorkspace: true,
		catalog.KeyMicrosoft365:    true,
	}
	var optionalKeys []string
	for _, app := range catalog.Apps {
		if !mandatory[app.Key] {
			optionalKeys = append(optionalKeys, app.Key)
		}
	}

	count := ctx.IntBetween(optionalAppsMin, optionalAppsMax)
	selectedKeys = append(selectedKeys, synth.Sample(ctx, optionalKeys, count)...)

	apps := make([]model.Application, 0, len(selectedKeys))
	for _, key := range selectedKeys {
		entry, ok := catalog.ByKey(key)
		if !ok {
			continue
		}
		enabledAt := ctx.Time(org.CreatedAt.Time, g.daysAgo(15))
		apps = append(apps, model.Application{
			OrgID:     org.OrgID,
			AppID:     fmt.Sprintf("%s_app_%s", org.OrgID, entry.Key),
			AppKey:    entry.Key,
			Name:      entry.Name,
			Category:  entry.Category,
			Vendor:    entry.Vendor,
			EnabledAt: model.NewTimestamp(enabledAt),
			BasePrice: entry.BasePrice,
			Core:      entry.Core,
		})
	}
	return apps
}
