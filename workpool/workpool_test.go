package workpool_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vlarion/partline/workpool"
)

func TestSubmit_ResolvesResult(t *testing.T) {
	p := workpool.New(2)
	f := p.Submit(context.Background(), func(ctx context.Context) error {
		return nil
	})
	require.NoError(t, f.Wait())
}

func TestSubmit_CapturesError(t *testing.T) {
	p := workpool.New(2)
	wantErr := errors.New("boom")
	f := p.Submit(context.Background(), func(ctx context.Context) error {
		return wantErr
	})
	require.ErrorIs(t, f.Wait(), wantErr)
}

func TestSubmit_RespectsBound(t *testing.T) {
	const bound = 3
	p := workpool.New(bound)

	var active int32
	var maxActive int32
	futures := make([]*workpool.Future, 0, 20)
	for i := 0; i < 20; i++ {
		f := p.Submit(context.Background(), func(ctx context.Context) error {
			n := atomic.AddInt32(&active, 1)
			for {
				old := atomic.LoadInt32(&maxActive)
				if n <= old || atomic.CompareAndSwapInt32(&maxActive, old, n) {
					break
				}
			}
			atomic.AddInt32(&active, -1)
			return nil
		})
		futures = append(futures, f)
	}
	for _, f := range futures {
		require.NoError(t, f.Wait())
	}
	require.LessOrEqual(t, int(maxActive), bound)
}

func TestRunAll_OneFailureDoesNotAbortSiblings(t *testing.T) {
	p := workpool.New(4)
	var completed int32
	fns := make([]func(context.Context) error, 5)
	for i := range fns {
		i := i
		fns[i] = func(ctx context.Context) error {
			atomic.AddInt32(&completed, 1)
			if i == 2 {
				return errors.New("task 2 failed")
			}
			return nil
		}
	}
	errs := p.RunAll(context.Background(), fns)
	require.Equal(t, int32(5), completed)
	require.Error(t, errs[2])
	for i, err := range errs {
		if i != 2 {
			require.NoError(t, err)
		}
	}
}
