package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmployeeBand(t *testing.T) {
	cases := []struct {
		count int
		band  string
	}{
		{1, "1-99"},
		{99, "1-99"},
		{100, "100-249"},
		{249, "100-249"},
		{250, "250-499"},
		{499, "250-499"},
		{500, "500-999"},
		{999, "500-999"},
		{1000, "1000+"},
		{25000, "1000+"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.band, EmployeeBand(tc.count), "count %d", tc.count)
	}
}
