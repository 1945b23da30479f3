package query

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type commitRecorder struct {
	mu     sync.Mutex
	values []string
}

func (r *commitRecorder) commit(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, v)
}

func (r *commitRecorder) committed() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.values...)
}

func TestDebouncer_RapidUpdatesCommitOnce(t *testing.T) {
	rec := &commitRecorder{}
	d := NewDebouncer(20*time.Millisecond, rec.commit)

	// Keystrokes inside the quiet period collapse to the final value.
	d.Update("a")
	d.Update("al")
	d.Update("alc")
	d.Update("alcarbon")

	time.Sleep(80 * time.Millisecond)

	assert.Equal(t, []string{"alcarbon"}, rec.committed())
}

func TestDebouncer_SeparatedUpdatesCommitEach(t *testing.T) {
	rec := &commitRecorder{}
	d := NewDebouncer(10*time.Millisecond, rec.commit)

	d.Update("first")
	time.Sleep(50 * time.Millisecond)
	d.Update("second")
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, []string{"first", "second"}, rec.committed())
}

func TestDebouncer_CancelDiscardsPending(t *testing.T) {
	rec := &commitRecorder{}
	d := NewDebouncer(20*time.Millisecond, rec.commit)

	d.Update("doomed")
	d.Cancel()

	time.Sleep(80 * time.Millisecond)

	assert.Empty(t, rec.committed())
}

func TestDebouncer_ZeroDelayUsesDefault(t *testing.T) {
	d := NewDebouncer(0, func(string) {})
	assert.Equal(t, DefaultDebounce, d.delay)
}
