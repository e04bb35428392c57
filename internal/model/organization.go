// internal/model/organization.go
package model

type Organization struct {
	OrgID         string    `csv:"org_id"`
	Name          string    `csv:"org_name"`
	Industry      string    `csv:"industry"`
	EmployeeCount int       `csv:"employee_count"`
	EmployeeBand  string    `csv:"employee_band"`
	Region        string    `csv:"region"`
	CreatedAt     Timestamp `csv:"created_at"`
}

// EmployeeBand buckets an employee count into its reporting band.
func EmployeeBand(employeeCount int) string {
	switch {
	case employeeCount < 100:
		return "1-99"
	case employeeCount < 250:
		return "100-249"
	case employeeCount < 500:
		return "250-499"
	case employeeCount < 1000:
		return "500-999"
	default:
		return "1000+"
	}
}
