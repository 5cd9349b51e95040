package location

// FailureMemo records the location ids that failed to resolve during one sync so they are not retried in it.
// A memo belongs to a single sync and is not safe for concurrent use.
type FailureMemo struct {
	failed map[int64]struct{}
}

func NewFailureMemo() *FailureMemo {
	return &FailureMemo{failed: make(map[int64]struct{})}
}

func (f *FailureMemo) Record(id int64) {
	f.failed[id] = struct{}{}
}

func (f *FailureMemo) Failed(id int64) bool {
	_, ok := f.failed[id]
	return ok
}

func (f *FailureMemo) Len() int {
	return len(f.failed)
}
