package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolWatcher_Check(t *testing.T) {
	var buf bytes.Buffer
	w := &poolWatcher{logger: newBufferLogger(&buf), warnAfter: 50 * time.Millisecond}

	w.check(context.Background(), sql.DBStats{})
	assert.Empty(t, buf.String(), "no waits, nothing to report")

	w.check(context.Background(), sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond})
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "waits=2")

	buf.Reset()
	w.check(context.Background(), sql.DBStats{WaitCount: 3, WaitDuration: 110 * time.Millisecond})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "waits=1")
	assert.Contains(t, buf.String(), "avgWait=100ms")
}
