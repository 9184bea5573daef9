package flow

import (
	"context"
	"sync"

	"github.com/ib-77/variant/pkg/variant"
	"github.com/ib-77/variant/pkg/variant/solo"
)

// Stage transforms one union value; stages are built from solo operators
// via MapStage, SwitchStage, TeeStage and ResolveStage or written by hand.
type Stage[In, Out any] func(ctx context.Context, input variant.Variant[In]) variant.Variant[Out]

// Run executes a same-type stage over the input channel with the given
// number of workers. The output closes when the input is drained or the
// context is done.
func Run[A any](ctx context.Context, inputCh <-chan variant.Variant[A],
	stage Stage[A, A], workers int) <-chan variant.Variant[A] {
	return Pipe(ctx, inputCh, stage, workers)
}

// Pipe executes a type-changing stage over the input channel with the
// given number of workers.
func Pipe[In, Out any](ctx context.Context, inputCh <-chan variant.Variant[In],
	stage Stage[In, Out], workers int) <-chan variant.Variant[Out] {

	out := make(chan variant.Variant[Out])
	wg := &sync.WaitGroup{}

	for range workers {
		wg.Add(1)
		go drive(ctx, inputCh, out, stage, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// drive is the per-worker loop: pull, transform, push, bail out when the
// context is done or the input closes.
func drive[In, Out any](ctx context.Context, inputCh <-chan variant.Variant[In],
	outCh chan<- variant.Variant[Out], stage Stage[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				return
			case outCh <- stage(ctx, in):
			}
		}
	}
}

// MapStage lifts a pure success transformation over the channel layer.
func MapStage[In, Out any](onSuccess func(In) Out) Stage[In, Out] {
	return func(_ context.Context, input variant.Variant[In]) variant.Variant[Out] {
		return solo.Map(input, onSuccess)
	}
}

// SwitchStage lifts a union-returning function over the channel layer.
func SwitchStage[In, Out any](onSuccess func(In) variant.Variant[Out]) Stage[In, Out] {
	return func(_ context.Context, input variant.Variant[In]) variant.Variant[Out] {
		return solo.Switch(input, onSuccess)
	}
}

// TeeStage lifts a success side effect over the channel layer.
func TeeStage[A any](onSuccess func(A)) Stage[A, A] {
	return func(_ context.Context, input variant.Variant[A]) variant.Variant[A] {
		return solo.Tee(input, onSuccess)
	}
}

// ResolveStage lifts a single-label resolution over the channel layer.
func ResolveStage[A any](label variant.Label, onFailure func(any) A) Stage[A, A] {
	return func(_ context.Context, input variant.Variant[A]) variant.Variant[A] {
		return solo.ResolveOne(input, label, onFailure)
	}
}

// Emit feeds plain values into a channel of successes against s.
func Emit[A any](ctx context.Context, s *variant.Schema, values ...A) <-chan variant.Variant[A] {
	in := make(chan variant.Variant[A])

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- variant.Success(s, v):
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Collect drains the channel into a slice, stopping early when the
// context is done.
func Collect[A any](ctx context.Context, out <-chan variant.Variant[A]) []variant.Variant[A] {
	res := make([]variant.Variant[A], 0)

	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
