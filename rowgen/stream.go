package rowgen

import (
	"context"
	"math/rand"
	"sync"

	"github.com/kbukum/synthkit/errors"
	"github.com/kbukum/synthkit/logger"
)

// DefaultBufferSize is the stream channel capacity when none is configured.
const DefaultBufferSize = 10

// Item is one unit of streamed output.
type Item struct {
	Table string
	Row   Row
}

// Option configures a Generate call.
type Option func(*genOptions)

type genOptions struct {
	rng    *rand.Rand
	buffer int
	log    *logger.Logger
	ctx    context.Context
}

// WithRand supplies the rng threaded through the whole traversal. Fixing
// the seed makes the run reproducible. Without it a process-default source
// is used and runs are not reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(o *genOptions) { o.rng = rng }
}

// WithSeed is shorthand for WithRand(rand.New(rand.NewSource(seed))).
func WithSeed(seed int64) Option {
	return func(o *genOptions) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithBufferSize sets the stream channel capacity. Zero is legal and means
// a fully synchronous hand-off between producer and consumer.
func WithBufferSize(n int) Option {
	return func(o *genOptions) {
		if n >= 0 {
			o.buffer = n
		}
	}
}

// WithLogger enables debug logging of the generation run.
func WithLogger(log *logger.Logger) Option {
	return func(o *genOptions) { o.log = log }
}

// WithContext bounds the producer's lifetime. When the context is
// cancelled the producer stops at its next send instead of blocking
// forever on a consumer that walked away.
func WithContext(ctx context.Context) Option {
	return func(o *genOptions) { o.ctx = ctx }
}

// Stream is the consumer side of a generation run. Items arrive in exactly
// the order the traversal emitted them (single producer, single consumer,
// FIFO channel).
//
// A failed traversal closes the stream with an error retrievable via Err.
// Note the buffering hazard: if the failure occurs after rows were
// buffered, a consumer that only takes the already-buffered items and
// never drains to completion will not observe the error. Collect and
// Tables always drain and therefore always surface it.
type Stream struct {
	items chan Item

	mu  sync.Mutex
	err error
}

// Generate runs the graph traversal in a producer goroutine and returns
// the stream it feeds.
//
// The producer blocks when the buffer is full. Without WithContext, a
// consumer that stops draining early leaves the producer blocked for the
// life of the process; that is the documented trade-off of the unbounded
// default.
func Generate(node Node, opts ...Option) *Stream {
	o := genOptions{buffer: DefaultBufferSize, ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(rand.Int63()))
	}

	s := &Stream{items: make(chan Item, o.buffer)}

	go func() {
		defer close(s.items)

		rows := 0
		err := Walk(o.rng, node, func(table string, row Row) error {
			select {
			case s.items <- Item{Table: table, Row: row}:
				rows++
				return nil
			case <-o.ctx.Done():
				return o.ctx.Err()
			}
		})
		if err != nil {
			// Record before close so a consumer that drains to the end
			// observes the failure.
			s.fail(errors.StreamFailed().WithCause(err))
			if o.log != nil {
				s.logFailure(o.log, rows, err)
			}
			return
		}
		if o.log != nil {
			o.log.Debug("generation complete", logger.Fields(
				logger.FieldRows, rows,
			))
		}
	}()

	return s
}

// Next blocks until the next item is available. ok is false once the
// stream is closed; check Err afterwards to distinguish completion from
// failure.
func (s *Stream) Next() (Item, bool) {
	item, ok := <-s.items
	return item, ok
}

// TryNext returns an already-buffered item without waiting. ok is false
// when nothing is buffered right now; that alone says nothing about
// completion or failure.
func (s *Stream) TryNext() (Item, bool) {
	select {
	case item, ok := <-s.items:
		return item, ok
	default:
		return Item{}, false
	}
}

// Chan exposes the underlying channel for range loops. Callers must check
// Err after the channel closes.
func (s *Stream) Chan() <-chan Item {
	return s.items
}

// Collect drains the stream and returns every item emitted before
// completion or failure. On failure the drained prefix is returned
// together with the propagated error.
func (s *Stream) Collect() ([]Item, error) {
	var items []Item
	for item := range s.items {
		items = append(items, item)
	}
	return items, s.Err()
}

// Tables drains the stream and groups rows by table in first-seen order.
func (s *Stream) Tables() (*Tables, error) {
	items, err := s.Collect()
	if err != nil {
		return nil, err
	}
	return GroupItems(items), nil
}

// Err reports the failure recorded by the producer, or nil. Only final
// once the stream is closed.
func (s *Stream) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Stream) fail(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

func (s *Stream) logFailure(log *logger.Logger, rows int, err error) {
	log.Error("generation failed", logger.Fields(
		logger.FieldRows, rows,
		logger.FieldError, err.Error(),
	))
}
