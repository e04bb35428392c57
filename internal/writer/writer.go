// internal/writer/writer.go
package writer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"github.com/dangerclosesec/orgsim/internal/generator"
)

// Output file names, one per table. Downstream loaders key warehouse table
// names off these stems.
const (
	FileOrgs        = "raw_orgs.csv"
	FileUsers       = "raw_okta_users.csv"
	FileGroups      = "raw_okta_groups.csv"
	FileApps        = "raw_okta_apps.csv"
	FileAssignments = "raw_okta_assignments.csv"
	FileLogins      = "raw_okta_logins.csv"
	FileUsage       = "raw_saas_usage.csv"
	FileContracts   = "raw_saas_contracts.csv"
	FileInvoices    = "raw_saas_invoices.csv"
)

type Writer struct {
	dir string
}

func New(dir string) *Writer {
	return &Writer{dir: dir}
}

// Write serializes every table under the writer's directory, creating it if
// absent. Each file is written to a temp path and renamed into place, so a
// prior run's file is only replaced by a fully written one. A header row is
// always present, even for empty tables.
func (w *Writer) Write(ds *generator.Dataset) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", w.dir, err)
	}

	tables := []struct {
		name string
		rows any
	}{
		{FileOrgs, ds.Organizations},
		{FileUsers, ds.Users},
		{FileGroups, ds.Groups},
		{FileApps, ds.Applications},
		{FileAssignments, ds.Assignments},
		{FileLogins, ds.Logins},
		{FileUsage, ds.Usage},
		{FileContracts, ds.Contracts},
		{FileInvoices, ds.Invoices},
	}
	for _, table := range tables {
		if err := w.writeTable(table.name, table.rows); err != nil {
			return fmt.Errorf("writing %s: %w", table.name, err)
		}
	}
	return nil
}

func (w *Writer) writeTable(name string, rows any) error {
	final := filepath.Join(w.dir, name)
	tmp := final + ".tmp"

	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	if err := gocsv.Marshal(rows, f); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	return os.Rename(tmp, final)
}
