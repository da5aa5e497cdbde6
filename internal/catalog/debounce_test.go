package catalog_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/fumio65/Thrift-Clothing/internal/catalog"
)

func TestDebouncerOnlyLastCallFires(t *testing.T) {
	d := catalog.NewDebouncer(50 * time.Millisecond)

	var calls int32
	var last atomic.Value

	// Simulate three rapid keystrokes; each one resets the wait.
	for _, q := range []string{"j", "ja", "jac"} {
		q := q
		d.Trigger(func() {
			atomic.AddInt32(&calls, 1)
			last.Store(q)
		})
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(120 * time.Millisecond)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, "jac", last.Load())
}

func TestDebouncerStopCancelsPending(t *testing.T) {
	d := catalog.NewDebouncer(30 * time.Millisecond)

	var calls int32
	d.Trigger(func() { atomic.AddInt32(&calls, 1) })
	d.Stop()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, int32(0), atomic.LoadInt32(&calls))
}
