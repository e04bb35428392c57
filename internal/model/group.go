// internal/model/group.go
package model

// Group is a department-scoped team container; membership is carried by the
// department tag on User rather than an explicit member list.
type Group struct {
	OrgID      string `csv:"org_id"`
	GroupID    string `csv:"group_id"`
	Name       string `csv:"group_name"`
	Department string `csv:"department"`
}
