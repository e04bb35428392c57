// internal/catalog/catalog.go
package catalog

// App is a static catalog entry shared across all organizations. Core apps
// land in virtually every organization's stack; non-core apps carry a list of
// departments they are targeted at.
type App struct {
	Key         string
	Name        string
	Category    string
	Vendor      string
	BasePrice   float64
	Core        bool
	TargetDepts []string
}

// Targets reports whether the app is targeted at the given department.
func (a App) Targets(department string) bool {
	for _, d := range a.TargetDepts {
		if d == department {
			return true
		}
	}
	return false
}

// Catalog keys referenced by the selection rules.
const (
	KeyGoogleWorkspace = "google_workspace"
	KeyMicrosoft365    = "microsoft_365"
	KeySlack           = "slack"
	KeyZoom            = "zoom"
	KeyOkta            = "okta"
)

// SuiteKeys are the two mutually exclusive productivity suites; every
// organization gets exactly one of them.
var SuiteKeys = []string{KeyGoogleWorkspace, KeyMicrosoft365}

// Apps is the full application catalog.
var Apps = []App{
	{Key: KeyGoogleWorkspace, Name: "Google Workspace", Category: "Productivity", Vendor: "Google", BasePrice: 18.0, Core: true},
	{Key: KeyMicrosoft365, Name: "Microsoft 365", Category: "Productivity", Vendor: "Microsoft", BasePrice: 20.0, Core: true},
	{Key: KeySlack, Name: "Slack", Category: "Collaboration", Vendor: "Slack", BasePrice: 12.0, Core: true},
	{Key: KeyZoom, Name: "Zoom", Category: "Video", Vendor: "Zoom", BasePrice: 15.0, Core: true},
	{Key: KeyOkta, Name: "Okta", Category: "Security", Vendor: "Okta", BasePrice: 8.0, Core: true, TargetDepts: []string{"IT", "Security"}},
	{Key: "jira", Name: "Jira", Category: "Engineering", Vendor: "Atlassian", BasePrice: 10.0, TargetDepts: []string{"Engineering", "Product"}},
	{Key: "confluence", Name: "Confluence", Category: "Engineering", Vendor: "Atlassian", BasePrice: 8.0, TargetDepts: []string{"Engineering", "Product"}},
	{Key: "github", Name: "GitHub", Category: "Engineering", Vendor: "GitHub", BasePrice: 21.0, TargetDepts: []string{"Engineering"}},
	{Key: "figma", Name: "Figma", Category: "Design", Vendor: "Figma", BasePrice: 15.0, TargetDepts: []string{"Design", "Product", "Marketing"}},
	{Key: "salesforce", Name: "Salesforce", Category: "Sales", Vendor: "Salesforce", BasePrice: 150.0, TargetDepts: []string{"Sales"}},
	{Key: "hubspot", Name: "HubSpot", Category: "Marketing", Vendor: "HubSpot", BasePrice: 45.0, TargetDepts: []string{"Marketing", "Sales"}},
	{Key: "zendesk", Name: "Zendesk", Category: "Support", Vendor: "Zendesk", BasePrice: 59.0, TargetDepts: []string{"Customer Success", "Support"}},
	{Key: "asana", Name: "Asana", Category: "Project Management", Vendor: "Asana", BasePrice: 13.0, TargetDepts: []string{"Product", "Operations", "Marketing"}},
	{Key: "notion", Name: "Notion", Category: "Productivity", Vendor: "Notion", BasePrice: 10.0, TargetDepts: []string{"Product", "Engineering", "Marketing"}},
	{Key: "docusign", Name: "DocuSign", Category: "Legal", Vendor: "DocuSign", BasePrice: 25.0, TargetDepts: []string{"Legal", "Sales", "Finance"}},
	{Key: "datadog", Name: "Datadog", Category: "Engineering", Vendor: "Datadog", BasePrice: 25.0, TargetDepts: []string{"Engineering", "IT"}},
	{Key: "tableau", Name: "Tableau", Category: "BI", Vendor: "Tableau", BasePrice: 70.0, TargetDepts: []string{"Finance", "Analytics"}},
}

// ByKey looks up a catalog entry by its key.
func ByKey(key string) (App, bool) {
	for _, a := range Apps {
		if a.Key == key {
			return a, true
		}
	}
	return App{}, false
}

// Departments lists every department an employee can belong to.
// DepartmentWeights holds the matching selection weights (engineering-heavy);
// both slices are index-aligned and the weights sum to 1.
var (
	Departments = []string{
		"Engineering",
		"Product",
		"Sales",
		"Marketing",
		"Finance",
		"HR",
		"IT",
		"Operations",
		"Customer Success",
		"Support",
		"Legal",
		"Design",
		"Analytics",
		"Security",
	}

	DepartmentWeights = []float64{
		0.22, 0.10, 0.14, 0.10, 0.08, 0.05, 0.07,
		0.06, 0.06, 0.04, 0.03, 0.03, 0.01, 0.01,
	}
)

var Industries = []string{
	"Fintech",
	"Healthcare",
	"Retail",
	"SaaS",
	"Manufacturing",
	"Logistics",
	"Media",
	"Education",
	"Energy",
	"Real Estate",
}

var Regions = []string{"North America", "Europe", "APAC", "LATAM"}

var Devices = []string{"macOS", "Windows", "Linux", "iOS", "Android"}

// activityTypes maps an app category to the in-app activity vocabulary used
// for usage events. Categories without an entry fall back to a single generic
// type rather than failing the lookup.
var activityTypes = map[string][]string{
	"Collaboration":      {"message", "channel_view", "file_share"},
	"Video":              {"meeting_join", "call_start", "screen_share"},
	"Engineering":        {"commit", "issue_update", "build"},
	"Design":             {"file_edit", "comment", "prototype_view"},
	"Sales":              {"lead_update", "opportunity_view", "call_log"},
	"Marketing":          {"campaign_edit", "email_send", "report_view"},
	"Support":            {"ticket_update", "ticket_view", "macro_apply"},
	"Project Management": {"task_update", "project_view", "comment"},
	"BI":                 {"dashboard_view", "query_run", "export"},
	"Legal":              {"document_sign", "envelope_send", "template_view"},
	"Productivity":       {"doc_edit", "calendar_view", "drive_access"},
	"Security":           {"policy_update", "login_audit", "app_assign"},
}

var fallbackActivityTypes = []string{"activity"}

// ActivityTypesFor returns the activity vocabulary for a category, or the
// generic fallback for categories that have no vocabulary of their own.
func ActivityTypesFor(category string) []string {
	if types, ok := activityTypes[category]; ok {
		return types
	}
	return fallbackActivityTypes
}
