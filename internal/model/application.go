// internal/model/application.go
package model

// Application is an organization-scoped instantiation of a catalog entry.
type Application struct {
	OrgID     string    `csv:"org_id"`
	AppID     string    `csv:"app_id"`
	AppKey    string    `csv:"app_key"`
	Name      string    `csv:"app_name"`
	Category  string    `csv:"category"`
	Vendor    string    `csv:"vendor"`
	EnabledAt Timestamp `csv:"enabled_at"`
	BasePrice float64   `csv:"base_price"`
	Core      bool      `csv:"core_app"`
}
