package taskline

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func exportTestStore(t *testing.T) *Store {
	t.Helper()
	s := newTestStore(t)
	installClock(s)

	_, err := s.Add("write proposal")
	assert.NoError(t, err)
	done, err := s.Add("send invoice")
	assert.NoError(t, err)
	assert.NoError(t, s.SetStatus(done.ID, StatusDone))
	return s
}

func TestExportJSON(t *testing.T) {
	e := NewExporter(exportTestStore(t))

	data, err := e.Export("json")
	assert.NoError(t, err)

	var tasks []Task
	assert.NoError(t, json.Unmarshal(data, &tasks))
	assert.Len(t, tasks, 2)
	assert.Equal(t, "write proposal", tasks[0].Description)
	assert.Equal(t, StatusDone, tasks[1].Status)
}

func TestExportCSV(t *testing.T) {
	e := NewExporter(exportTestStore(t))

	data, err := e.Export("csv")
	assert.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Len(t, lines, 3)
	assert.Equal(t, "id,description,status,createdAt,updatedAt", lines[0])
	assert.Contains(t, lines[1], "write proposal")
	assert.Contains(t, lines[2], "done")
}

func TestExportPDF(t *testing.T) {
	e := NewExporter(exportTestStore(t))

	data, err := e.Export("pdf")
	assert.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"), "output should be a PDF document")
}

func TestExportUnknownFormat(t *testing.T) {
	e := NewExporter(exportTestStore(t))

	_, err := e.Export("xml")
	assert.Error(t, err)
}

func TestExportIsCaseInsensitive(t *testing.T) {
	e := NewExporter(exportTestStore(t))

	_, err := e.Export("JSON")
	assert.NoError(t, err)
}
