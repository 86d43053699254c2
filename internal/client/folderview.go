package client

import (
	"sort"
	"strings"
	"sync"

	"adminapi/internal/model"
)

// FolderView derives the navigable folder list and the filtered file view
// from the files slice cache plus transient UI state: the selected folder,
// the search query and the locked-folder set. Everything here is pure view
// state; nothing reaches the server.
type FolderView struct {
	files *Files

	mu       sync.RWMutex
	selected string
	search   string
	locked   map[string]struct{}
}

// NewFolderView returns a view over the given files slice with root
// selected, no search text and no locked folders. Lock state starts empty
// every session; it is never persisted.
func NewFolderView(files *Files) *FolderView {
	return &FolderView{files: files, locked: make(map[string]struct{})}
}

// Folders returns the distinct non-empty folder names across the cached
// records, sorted lexicographically. There is no folder entity; the set is
// derived entirely from the records.
func (v *FolderView) Folders() []string {
	seen := make(map[string]struct{})
	for _, f := range v.files.Items() {
		if f.Folder != "" {
			seen[f.Folder] = struct{}{}
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Select sets the folder the tree has focused. The empty string selects the
// root "All Files" view.
func (v *FolderView) Select(folder string) {
	v.mu.Lock()
	v.selected = folder
	v.mu.Unlock()
}

// Selected returns the currently selected folder, empty for root.
func (v *FolderView) Selected() string {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.selected
}

// Search sets the search query. A non-empty query suspends folder selection
// and matches across all folders.
func (v *FolderView) Search(query string) {
	v.mu.Lock()
	v.search = query
	v.mu.Unlock()
}

// Visible returns the records the file table should show. With search text
// present, a record is visible when its name, any tag or its project
// contains the text as a case-insensitive substring, regardless of folder.
// With no search text, visibility follows the tree selection: everything at
// root, or the records whose folder equals the selection.
func (v *FolderView) Visible() []model.FileRecord {
	v.mu.RLock()
	selected, search := v.selected, v.search
	v.mu.RUnlock()

	items := v.files.Items()

	if search != "" {
		needle := strings.ToLower(search)
		out := make([]model.FileRecord, 0, len(items))
		for _, f := range items {
			if matchesSearch(f, needle) {
				out = append(out, f)
			}
		}
		return out
	}

	if selected == "" {
		return items
	}
	out := make([]model.FileRecord, 0, len(items))
	for _, f := range items {
		if f.Folder == selected {
			out = append(out, f)
		}
	}
	return out
}

func matchesSearch(f model.FileRecord, needle string) bool {
	if strings.Contains(strings.ToLower(f.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(f.Project), needle) {
		return true
	}
	for _, tag := range f.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}

// ToggleLock flips the lock state of a folder name. Toggling the empty
// string is a no-op; the root view cannot be locked.
func (v *FolderView) ToggleLock(folder string) {
	if folder == "" {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if _, ok := v.locked[folder]; ok {
		delete(v.locked, folder)
	} else {
		v.locked[folder] = struct{}{}
	}
}

// IsLocked reports whether the folder name is in the lock set. A renamed
// folder keeps its old name locked as an orphan until toggled off.
func (v *FolderView) IsLocked(folder string) bool {
	if folder == "" {
		return false
	}
	v.mu.RLock()
	defer v.mu.RUnlock()
	_, ok := v.locked[folder]
	return ok
}

// FileLocked reports whether edit and delete affordances for the record
// should be suppressed. A record with an empty folder is never locked. The
// lock is presentation-only; the server never enforces it.
func (v *FolderView) FileLocked(f model.FileRecord) bool {
	return v.IsLocked(f.Folder)
}
