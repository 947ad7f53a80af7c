package update

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vibetimer/vibe/internal/model"
)

var errInvalidBackup = errors.New("backup file is missing userData, sessions or settings")

// exportData writes a dated backup snapshot next to the configured backup
// directory. The transient session flag is never part of the file.
func (m Model) exportData() Model {
	doc, err := model.ExportDocument(m.State)
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("export error: %v", err), IsError: true}
		return m
	}
	name := fmt.Sprintf("vibe-backup-%s.json", m.now().Format("2006-01-02"))
	path := filepath.Join(m.backupDir, name)
	if err := os.WriteFile(path, append(doc, '\n'), 0o644); err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("export error: %v", err), IsError: true}
		return m
	}
	m.Status = StatusBar{Text: "exported to " + path}
	return m
}

// importDocument validates and merges a backup file into a fresh state. The
// three top-level sections must be present and non-null; everything below
// them merges field by field against the defaults. The daily streak check is
// stamped as done for today so the imported streak survives until tomorrow.
func importDocument(raw []byte, now time.Time) (model.AppState, error) {
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil {
		return model.AppState{}, err
	}
	for _, key := range []string{"userData", "sessions", "settings"} {
		v, ok := doc[key]
		if !ok || string(v) == "null" {
			return model.AppState{}, errInvalidBackup
		}
	}
	st, err := model.MergeWithDefaults(raw)
	if err != nil {
		return model.AppState{}, err
	}
	model.ResetTransient(&st)
	st.UserData.LastCheckedDate = now.Format("2006-01-02")
	return st, nil
}

// runImport replaces the whole document and quits; the next launch starts
// from the imported state, mirroring an app restart after a restore.
func (m Model) runImport(path string) (Model, tea.Cmd) {
	raw, err := os.ReadFile(path)
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("import error: %v", err), IsError: true}
		return m, nil
	}
	st, err := importDocument(raw, m.now())
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: fmt.Sprintf("import error: %v", err), IsError: true}
		return m, nil
	}
	m.State = st
	m.persist()
	m.Quitting = true
	m.Status = StatusBar{Text: "import complete, restart to continue"}
	return m, tea.Quit
}
