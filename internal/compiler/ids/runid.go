package ids

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

var (
	entropyMu sync.Mutex
	entropy   = ulid.Monotonic(rand.Reader, 0)
)

// RunID identifies one compilation in logs and traces.
// IDs from one process sort in creation order.
type RunID ulid.ULID

// NewRunID returns a fresh, monotonically increasing RunID.
func NewRunID() RunID {
	return newRunIDAt(time.Now())
}

func newRunIDAt(t time.Time) RunID {
	entropyMu.Lock()
	defer entropyMu.Unlock()
	return RunID(ulid.MustNew(ulid.Timestamp(t), entropy))
}

// String encodes the id as 26 Crockford base32 characters.
func (id RunID) String() string {
	return ulid.ULID(id).String()
}

// Time is the creation time, at millisecond precision.
func (id RunID) Time() time.Time {
	return ulid.Time(ulid.ULID(id).Time())
}

// ParseRunID decodes the output of RunID.String.
func ParseRunID(s string) (RunID, error) {
	u, err := ulid.ParseStrict(s)
	if err != nil {
		return RunID{}, err
	}
	return RunID(u), nil
}
