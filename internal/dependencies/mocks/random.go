package mocks

import (
	"strings"
	"sync"

	"github.com/mcoot/foxhound-go/internal/dependencies/random"
)

// MockRandom replays queued values. Bot tests queue Intn picks; save tests
// queue generated slot names.
type MockRandom struct {
	mu    sync.Mutex
	picks []int
	names []string
	used  int
}

// Ensure MockRandom implements Random
var _ random.Random = (*MockRandom)(nil)

// NewMockRandom creates a MockRandom with empty queues
func NewMockRandom() *MockRandom {
	return &MockRandom{}
}

// Intn pops the next queued pick reduced modulo n. An empty queue yields 0,
// which makes the random bot take the first candidate.
func (r *MockRandom) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.picks) == 0 || n <= 0 {
		return 0
	}
	pick := r.picks[0]
	r.picks = r.picks[1:]
	r.used++
	return pick % n
}

// IntnCalls returns how many queued picks have been consumed
func (r *MockRandom) IntnCalls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.used
}

// String pops the next queued name. An empty queue yields the first length
// characters of alphabet, repeated as needed, so generated names stay valid.
func (r *MockRandom) String(length int, alphabet string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.names) > 0 {
		name := r.names[0]
		r.names = r.names[1:]
		return name
	}
	if length <= 0 || alphabet == "" {
		return ""
	}
	return strings.Repeat(alphabet, length/len(alphabet)+1)[:length]
}

// QueueIntn adds values to the Intn queue
func (r *MockRandom) QueueIntn(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.picks = append(r.picks, values...)
}

// QueueString adds values to the String queue
func (r *MockRandom) QueueString(values ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.names = append(r.names, values...)
}
