package stream

import "context"

type sliceSource[T any] struct {
	items []T
}

func (ss sliceSource[T]) Values(ctx context.Context) <-chan T {
	resultCh := make(chan T)

	go func() {
		defer close(resultCh)

		for _, item := range ss.items {
			select {
			case resultCh <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	return resultCh
}
