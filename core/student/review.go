package student

// Review is the administrator's browsing session over the record store: a
// live search, a toggleable ordering and an at-most-one staged deletion.
type Review struct {
	svc      *Service
	filter   QueryFilter
	stagedID string
}

func NewReview(svc *Service) *Review {
	return &Review{svc: svc}
}

// SetSearch updates the live, case-insensitive native-name filter.
func (rev *Review) SetSearch(text string) {
	rev.filter.Search = text
	rev.filter.Clean()
}

// ToggleSort selects the ordering: picking the current key again flips the
// direction, picking a new key resets to ascending.
func (rev *Review) ToggleSort(key SortKey) {
	if rev.filter.Sort == key {
		rev.filter.Ascending = !rev.filter.Ascending
		return
	}
	rev.filter.Sort = key
	rev.filter.Ascending = true
}

// View returns the filtered, ordered snapshot consistent with the latest
// store contents, search text and sort selection.
func (rev *Review) View() ([]Student, error) {
	return rev.svc.Filter(rev.filter)
}

// StageDelete marks one record for deletion pending confirmation. Staging
// never touches the store.
func (rev *Review) StageDelete(id string) {
	rev.stagedID = id
}

func (rev *Review) StagedID() string {
	return rev.stagedID
}

// ConfirmDelete recomputes the collection without the staged record and
// commits it wholesale. Nothing staged means nothing happens.
func (rev *Review) ConfirmDelete() error {
	if rev.stagedID == "" {
		return nil
	}
	students, err := rev.svc.QueryAll()
	if err != nil {
		return err
	}
	kept := make([]Student, 0, len(students))
	for _, s := range students {
		if s.ID != rev.stagedID {
			kept = append(kept, s)
		}
	}
	if err := rev.svc.Replace(kept); err != nil {
		return err
	}
	rev.stagedID = ""
	return nil
}

// CancelDelete drops the staged id without mutating the store.
func (rev *Review) CancelDelete() {
	rev.stagedID = ""
}
