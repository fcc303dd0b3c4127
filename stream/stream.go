// Package stream runs lazy channel pipelines over set elements, or over
// any other element source.
package stream

import (
	"context"
	"sync"

	"github.com/pkg/errors"
)

const DefaultConcurrency = 8

type (
	// Source produces elements lazily. *set.Set satisfies it through
	// Values.
	Source[T any] interface {
		Values(ctx context.Context) <-chan T
	}

	// Destination absorbs pipeline output. *set.Set satisfies it through
	// AddNX.
	Destination[T any] interface {
		AddNX(item T) (added bool)
	}

	PredicateFn[T any] func(ctx context.Context, item T) (keep bool, err error)
	MapperFn[T any]    func(ctx context.Context, item T) (T, error)
	IteratorFn[T any]  func(ctx context.Context, item T) error

	stage[T any] func(ctx context.Context, rs *runState, in <-chan T) <-chan T

	// Stream is a staged pipeline. Stages are recorded by Filter, Map and
	// Take and only start running when a terminal operation (ForEach,
	// Collect, PipeInto) is invoked.
	Stream[T any] struct {
		source Source[T]
		fc     flowControl
		stages []stage[T]
	}
)

// From builds a stream over source.
func From[T any](source Source[T], options ...Option) *Stream[T] {
	fc := flowControl{concurrency: DefaultConcurrency}
	for _, o := range options {
		o(&fc)
	}

	return &Stream[T]{
		source: source,
		fc:     fc,
	}
}

// FromSlice builds a stream over the items of a slice.
func FromSlice[T any](items []T, options ...Option) *Stream[T] {
	return From[T](sliceSource[T]{items: items}, options...)
}

// Filter keeps the elements for which predicate is true.
func (s *Stream[T]) Filter(predicate PredicateFn[T], options ...Option) *Stream[T] {
	concurrency := s.fc.resolve(options)

	st := func(ctx context.Context, rs *runState, in <-chan T) <-chan T {
		out := make(chan T)
		var wg sync.WaitGroup
		wg.Add(concurrency)

		for i := 0; i < concurrency; i++ {
			go func() {
				defer wg.Done()

				for {
					select {
					case item, ok := <-in:
						if !ok {
							return
						}
						keep, err := predicate(ctx, item)
						if err != nil {
							rs.fail(errors.Wrap(err, "stream: filter predicate"))
							return
						}
						if !keep {
							continue
						}
						select {
						case out <- item:
						case <-ctx.Done():
							return
						}
					case <-ctx.Done():
						return
					}
				}
			}()
		}

		go func() {
			wg.Wait()
			close(out)
		}()

		return out
	}

	s.stages = append(s.stages, st)
	return s
}

// Map replaces every element with mapper(element). A mapper returning
// ErrSkip drops the element instead of failing the run.
func (s *Stream[T]) Map(mapper MapperFn[T], options ...Option) *Stream[T] {
	concurrency := s.fc.resolve(options)

	st := func(ctx context.Context, rs *runState, in <-chan T) <-chan T {
		out := make(chan T)
		var wg sync.WaitGroup
		wg.Add(concurrency)

		for i := 0; i < concurrency; i++ {
			go func() {
				defer wg.Done()

				for {
					select {
					case item, ok := <-in:
						if !ok {
							return
						}
						mapped, err := mapper(ctx, item)
						if err != nil {
							if errors.Is(err, ErrSkip) {
								continue
							}
							rs.fail(errors.Wrap(err, "stream: mapper"))
							return
						}
						select {
						case out <- mapped:
						case <-ctx.Done():
							return
						}
					case <-ctx.Done():
						return
					}
				}
			}()
		}

		go func() {
			wg.Wait()
			close(out)
		}()

		return out
	}

	s.stages = append(s.stages, st)
	return s
}

// Take forwards at most n elements and then shuts the pipeline down.
func (s *Stream[T]) Take(n int) *Stream[T] {
	st := func(ctx context.Context, rs *runState, in <-chan T) <-chan T {
		out := make(chan T)

		go func() {
			defer close(out)

			taken := 0
			for taken < n {
				select {
				case item, ok := <-in:
					if !ok {
						return
					}
					select {
					case out <- item:
						taken++
					case <-ctx.Done():
						return
					}
				case <-ctx.Done():
					return
				}
			}

			rs.cancel()
		}()

		return out
	}

	s.stages = append(s.stages, st)
	return s
}

// ForEach runs the pipeline and applies f to every element that reaches
// the end of it.
func (s *Stream[T]) ForEach(ctx context.Context, f IteratorFn[T]) error {
	out, rs := s.run(ctx)
	defer rs.cancel()

	for item := range out {
		if err := f(ctx, item); err != nil {
			rs.fail(errors.Wrap(err, "stream: iterator"))
			break
		}
	}

	if err := rs.firstErr(); err != nil {
		return err
	}
	return ctx.Err()
}

// Collect runs the pipeline and gathers the surviving elements in arrival
// order.
func (s *Stream[T]) Collect(ctx context.Context) ([]T, error) {
	var items []T
	err := s.ForEach(ctx, func(_ context.Context, item T) error {
		items = append(items, item)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return items, nil
}

// PipeInto runs the pipeline and feeds every surviving element to dst.
func (s *Stream[T]) PipeInto(ctx context.Context, dst Destination[T]) error {
	return s.ForEach(ctx, func(_ context.Context, item T) error {
		dst.AddNX(item)
		return nil
	})
}

func (s *Stream[T]) run(parent context.Context) (<-chan T, *runState) {
	ctx, cancel := context.WithCancel(parent)
	rs := &runState{cancel: cancel}

	in := make(chan T)
	go func() {
		defer close(in)

		for item := range s.source.Values(ctx) {
			select {
			case in <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	out := (<-chan T)(in)
	for _, st := range s.stages {
		out = st(ctx, rs, out)
	}
	return out, rs
}
