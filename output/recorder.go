package output

import "sync"

// Added, Executed, and Deleted are the recorded shapes of the three
// Formatter events, used by Recorder and by tests that need to
// inspect exactly what the engine emitted.
type Added struct {
	OrderID    uint64
	Instrument string
	Price      int64
	Count      int64
	IsSell     bool
	Timestamp  uint64
}

type Executed struct {
	RestingID   uint64
	ActiveID    uint64
	ExecutionID uint64
	Price       int64
	Qty         int64
	Timestamp   uint64
}

type Deleted struct {
	OrderID   uint64
	Accepted  bool
	Timestamp uint64
}

// Recorder is a Formatter that appends every event to in-memory
// slices under a single mutex, for use in tests that assert on the
// exact event sequence emitted for an instrument.
type Recorder struct {
	mu       sync.Mutex
	Adds     []Added
	Execs    []Executed
	Deletes  []Deleted
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) OrderAdded(orderID uint64, instrument string, price int64, count int64, isSell bool, timestamp uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Adds = append(r.Adds, Added{orderID, instrument, price, count, isSell, timestamp})
}

func (r *Recorder) OrderExecuted(restingID, activeID uint64, executionID uint64, price int64, qty int64, timestamp uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Execs = append(r.Execs, Executed{restingID, activeID, executionID, price, qty, timestamp})
}

func (r *Recorder) OrderDeleted(orderID uint64, accepted bool, timestamp uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Deletes = append(r.Deletes, Deleted{orderID, accepted, timestamp})
}

// Snapshot returns a consistent, independent copy of all recorded
// events so a test can inspect them without racing further writers.
func (r *Recorder) Snapshot() (adds []Added, execs []Executed, deletes []Deleted) {
	r.mu.Lock()
	defer r.mu.Unlock()
	adds = append(adds, r.Adds...)
	execs = append(execs, r.Execs...)
	deletes = append(deletes, r.Deletes...)
	return
}
