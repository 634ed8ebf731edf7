package audit

import (
	"context"
	"sync"
	"time"

	"autoservice/internal/model"

	"go.uber.org/zap"
)

const writeTimeout = 5 * time.Second

// Writer persists audit rows.
type Writer interface {
	Log(ctx context.Context, entry *model.Log) error
}

type entry struct {
	ctx context.Context
	log model.Log
}

// Recorder writes audit rows on its own goroutine so that a failing audit write never
// changes the outcome of the operation being audited.
type Recorder struct {
	writer  Writer
	entries chan entry
	errs    chan error
	pending sync.WaitGroup
	mu      sync.RWMutex
	closed  bool
	done    chan struct{}
	log     *zap.SugaredLogger
	now     func() time.Time
}

// NewRecorder starts the background writer. buffer bounds the number of queued rows.
func NewRecorder(writer Writer, buffer int, log *zap.SugaredLogger) *Recorder {
	if buffer < 1 {
		buffer = 1
	}
	r := &Recorder{
		writer:  writer,
		entries: make(chan entry, buffer),
		errs:    make(chan error, 16),
		done:    make(chan struct{}),
		log:     log,
		now:     time.Now,
	}
	go r.run()
	return r
}

// Record queues a row. It never blocks: when the buffer is full the row is dropped and logged.
func (r *Recorder) Record(ctx context.Context, userID uint, description string) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		r.log.Warnw("audit recorder closed, entry dropped", "userID", userID, "description", description)
		return
	}

	uid := userID
	e := entry{
		ctx: context.WithoutCancel(ctx),
		log: model.Log{UserID: &uid, Date: r.now(), Description: description},
	}
	if userID == 0 {
		e.log.UserID = nil
	}

	r.pending.Add(1)
	select {
	case r.entries <- e:
	default:
		r.pending.Done()
		r.log.Warnw("audit buffer full, entry dropped", "userID", userID, "description", description)
	}
}

// Errors reports write failures. Unread errors beyond the channel's buffer are discarded.
func (r *Recorder) Errors() <-chan error {
	return r.errs
}

// Flush blocks until every queued row has been written or has failed.
func (r *Recorder) Flush() {
	r.pending.Wait()
}

// Close drains the queue and stops the writer. Later Record calls are dropped.
func (r *Recorder) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		<-r.done
		return
	}
	r.closed = true
	close(r.entries)
	r.mu.Unlock()

	<-r.done
}

func (r *Recorder) run() {
	defer close(r.done)
	for e := range r.entries {
		r.write(e)
		r.pending.Done()
	}
}

func (r *Recorder) write(e entry) {
	ctx, cancel := context.WithTimeout(e.ctx, writeTimeout)
	defer cancel()

	if err := r.writer.Log(ctx, &e.log); err != nil {
		r.log.Errorw("failed to write audit log", "description", e.log.Description, "error", err)
		select {
		case r.errs <- err:
		default:
		}
	}
}
