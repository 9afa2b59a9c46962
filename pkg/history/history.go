// Package history keeps a bounded, linear undo/redo log of project
// snapshots. Snapshots are deep copies: live graph mutations after a
// commit never corrupt history, and restores hand back fresh copies.
package history

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"

	"github.com/cutlineapp/cutline/pkg/models"
)

// DefaultMaxEntries bounds the history log when no cap is configured.
const DefaultMaxEntries = 100

// Snapshot is one immutable history entry: the full project graph,
// the selection at commit time, the gesture label and a timestamp.
// Snapshots hold no decode handles or other live media state; those
// are re-associated by asset identity after a restore.
type Snapshot struct {
	Label     string
	TakenAt   time.Time
	project   *models.Project
	selection models.Selection
}

// Manager holds the snapshot list and a cursor. Invariant once any
// entry exists: 0 <= index < len(entries).
type Manager struct {
	entries []*Snapshot
	index   int
	max     int
}

func NewManager(maxEntries int) *Manager {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &Manager{
		index: -1,
		max:   maxEntries,
	}
}

// Commit records a snapshot of the project and selection. Any redo
// branch beyond the cursor is discarded; the log is capped by
// dropping the oldest entries.
func (m *Manager) Commit(label string, p *models.Project, sel models.Selection) error {
	project, err := cloneProject(p)
	if err != nil {
		return fmt.Errorf("snapshotting project for %q: %w", label, err)
	}

	// prune the redo branch
	m.entries = m.entries[:m.index+1]

	m.entries = append(m.entries, &Snapshot{
		Label:     label,
		TakenAt:   time.Now(),
		project:   project,
		selection: cloneSelection(sel),
	})

	if len(m.entries) > m.max {
		excess := len(m.entries) - m.max
		m.entries = m.entries[excess:]
	}
	m.index = len(m.entries) - 1
	return nil
}

// Undo moves the cursor back one entry and returns a copy of the
// graph at the new cursor. Returns ok=false at the beginning of
// history.
func (m *Manager) Undo() (*models.Project, models.Selection, bool) {
	if !m.CanUndo() {
		return nil, models.Selection{}, false
	}
	m.index--
	return m.restore()
}

// Redo moves the cursor forward one entry and returns a copy of the
// graph at the new cursor. Returns ok=false at the end of history.
func (m *Manager) Redo() (*models.Project, models.Selection, bool) {
	if !m.CanRedo() {
		return nil, models.Selection{}, false
	}
	m.index++
	return m.restore()
}

func (m *Manager) restore() (*models.Project, models.Selection, bool) {
	snap := m.entries[m.index]
	project, err := cloneProject(snap.project)
	if err != nil {
		// Hand out the stored graph rather than failing the session;
		// the next commit re-copies it anyway.
		return snap.project, cloneSelection(snap.selection), true
	}
	return project, cloneSelection(snap.selection), true
}

func (m *Manager) CanUndo() bool {
	return m.index > 0
}

func (m *Manager) CanRedo() bool {
	return m.index >= 0 && m.index < len(m.entries)-1
}

// Len is the number of entries in the log.
func (m *Manager) Len() int {
	return len(m.entries)
}

// Label returns the label at the cursor, or "".
func (m *Manager) Label() string {
	if m.index < 0 || m.index >= len(m.entries) {
		return ""
	}
	return m.entries[m.index].Label
}

// Labels returns the labels of all entries, oldest first.
func (m *Manager) Labels() []string {
	out := make([]string, len(m.entries))
	for i, e := range m.entries {
		out[i] = e.Label
	}
	return out
}

// Index returns the cursor position, -1 when the log is empty.
func (m *Manager) Index() int {
	return m.index
}

func cloneProject(p *models.Project) (*models.Project, error) {
	out := &models.Project{}
	if err := copier.CopyWithOption(out, p, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}
	if out.Assets == nil {
		out.Assets = make(map[uuid.UUID]*models.Asset)
	}
	return out, nil
}

func cloneSelection(sel models.Selection) models.Selection {
	out := models.Selection{}
	if sel.ClipIDs != nil {
		out.ClipIDs = append([]uuid.UUID{}, sel.ClipIDs...)
	}
	return out
}
