package audit

import (
	"context"
	"errors"
	"sync"
	"testing"

	"autoservice/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryWriter struct {
	mu   sync.Mutex
	rows []model.Log
	err  error
}

func (w *memoryWriter) Log(_ context.Context, entry *model.Log) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.err != nil {
		return w.err
	}
	w.rows = append(w.rows, *entry)
	return nil
}

func (w *memoryWriter) Rows() []model.Log {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]model.Log(nil), w.rows...)
}

func TestRecorder_WritesInOrder(t *testing.T) {
	w := &memoryWriter{}
	r := NewRecorder(w, 8, zap.NewNop().Sugar())
	defer r.Close()

	r.Record(context.Background(), 7, "Added client Jan Kowalski")
	r.Record(context.Background(), 7, "Deleted clients 3")
	r.Flush()

	rows := w.Rows()
	require.Len(t, rows, 2)
	assert.Equal(t, "Added client Jan Kowalski", rows[0].Description)
	assert.Equal(t, "Deleted clients 3", rows[1].Description)
	require.NotNil(t, rows[0].UserID)
	assert.Equal(t, uint(7), *rows[0].UserID)
	assert.False(t, rows[0].Date.IsZero())
}

func TestRecorder_SystemEntryHasNoUser(t *testing.T) {
	w := &memoryWriter{}
	r := NewRecorder(w, 1, zap.NewNop().Sugar())
	defer r.Close()

	r.Record(context.Background(), 0, "Seeded permissions")
	r.Flush()

	rows := w.Rows()
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0].UserID)
}

func TestRecorder_ReportsFailures(t *testing.T) {
	w := &memoryWriter{err: errors.New("disk full")}
	r := NewRecorder(w, 4, zap.NewNop().Sugar())
	defer r.Close()

	r.Record(context.Background(), 1, "Added role")
	r.Flush()

	select {
	case err := <-r.Errors():
		assert.EqualError(t, err, "disk full")
	default:
		t.Fatal("expected a write error")
	}
}

func TestRecorder_SurvivesCancelledRequestContext(t *testing.T) {
	w := &memoryWriter{}
	r := NewRecorder(w, 4, zap.NewNop().Sugar())
	defer r.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r.Record(ctx, 1, "Edited order 5")
	r.Flush()

	assert.Len(t, w.Rows(), 1)
}

func TestRecorder_CloseDrainsAndDropsLater(t *testing.T) {
	w := &memoryWriter{}
	r := NewRecorder(w, 16, zap.NewNop().Sugar())

	for i := 0; i < 10; i++ {
		r.Record(context.Background(), 1, "entry")
	}
	r.Close()
	assert.Len(t, w.Rows(), 10)

	r.Record(context.Background(), 1, "after close")
	r.Close()
	assert.Len(t, w.Rows(), 10)
}
