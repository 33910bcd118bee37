package display

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/callie/launchpad/internal/project"
)

func TestFormatProjectTable(t *testing.T) {
	records := []project.Record{
		{Name: "My Test Algorithm", Path: "/projects/My Test Algorithm", ModifiedAt: time.Now().Add(-2 * time.Hour)},
		{Name: "Sample", Path: "/projects/Sample", ModifiedAt: time.Now().Add(-48 * time.Hour)},
	}

	rows := FormatProjectTable(records, false)

	// Header, separator, one row per record
	assert.Len(t, rows, 4)
	assert.Contains(t, rows[0], "Name")
	assert.Contains(t, rows[0], "Modified")
	assert.Contains(t, rows[0], "Path")
	assert.True(t, strings.HasPrefix(rows[1], "-"))
	assert.Contains(t, rows[2], "My Test Algorithm")
	assert.Contains(t, rows[2], "2h ago")
	assert.Contains(t, rows[3], "Sample")
	assert.Contains(t, rows[3], "2d ago")
}

func TestFormatProjectTableEmpty(t *testing.T) {
	rows := FormatProjectTable(nil, false)
	assert.Equal(t, []string{"No projects found"}, rows)
}

func TestFormatMatches(t *testing.T) {
	matches := []project.Scored{
		{Record: project.Record{Name: "Sample"}, Score: 1.0},
		{Record: project.Record{Name: "Samples Archive"}, Score: 0.8},
	}

	rows := FormatMatches(matches, false)

	assert.Equal(t, []string{"1.00  Sample", "0.80  Samples Archive"}, rows)
}

func TestNavigationBar(t *testing.T) {
	assert.Equal(t, "Page 2 of 5 (42 projects)", NavigationBar(2, 5, 42, false))
	assert.Equal(t, "Page 1 of 1 (0 projects)", NavigationBar(1, 1, 0, false))
	assert.Equal(t, "Page 1 of 1 (1 project)", NavigationBar(1, 1, 1, false))
}

func TestFormatAge(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"seconds", now.Add(-30 * time.Second), "just now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hours", now.Add(-3 * time.Hour), "3h ago"},
		{"days", now.Add(-72 * time.Hour), "3d ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatAge(tt.t))
		})
	}
}
