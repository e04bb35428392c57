package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validGenerateParams() GenerateParams {
	return GenerateParams{
		OutDir:       "data/raw",
		Seed:         42,
		Orgs:         12,
		MinEmployees: 120,
		MaxEmployees: 800,
		Months:       12,
	}
}

func TestGenerateParamsValid(t *testing.T) {
	assert.NoError(t, validGenerateParams().Validate())

	p := validGenerateParams()
	p.MinEmployees = 10
	p.MaxEmployees = 10
	assert.NoError(t, p.Validate(), "equal bounds are a valid degenerate range")
}

func TestGenerateParamsInvertedBoundsFailFast(t *testing.T) {
	p := validGenerateParams()
	p.MinEmployees = 800
	p.MaxEmployees = 120
	err := p.Validate()
	require.Error(t, err, "inverted bounds must be rejected, not clamped")
	assert.Contains(t, err.Error(), "must not exceed")
	assert.Contains(t, err.Error(), "800")
}

func TestGenerateParamsNonPositive(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*GenerateParams)
		want   string
	}{
		{"zero orgs", func(p *GenerateParams) { p.Orgs = 0 }, "organization count"},
		{"negative orgs", func(p *GenerateParams) { p.Orgs = -3 }, "organization count"},
		{"zero min employees", func(p *GenerateParams) { p.MinEmployees = 0 }, "min employees"},
		{"zero months", func(p *GenerateParams) { p.Months = 0 }, "invoice months"},
		{"missing out dir", func(p *GenerateParams) { p.OutDir = "" }, "output directory"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validGenerateParams()
			tc.mutate(&p)
			err := p.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoadParams(t *testing.T) {
	p := LoadParams{Dir: "data/raw", ConnString: "postgres://localhost/warehouse", Schema: "raw"}
	assert.NoError(t, p.Validate())

	p.ConnString = ""
	err := p.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection string")

	err = LoadParams{ConnString: "x", Schema: "raw"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input directory")
}
