package fanout_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/workitems/internal/app/fanout"
)

func TestMap_EmptyItems(t *testing.T) {
	t.Parallel()

	out, err := fanout.Map(context.Background(), 4, []string{}, func(_ context.Context, _ string) (int, error) {
		t.Fatal("fn should not be called for empty items")
		return 0, nil
	})
	if err != nil {
		t.Fatalf("Map() error = %v, want nil", err)
	}
	if out == nil || len(out) != 0 {
		t.Fatalf("Map() = %v, want empty non-nil slice", out)
	}
}

func TestMap_PreservesOrder(t *testing.T) {
	t.Parallel()

	items := []int{5, 1, 4, 2, 3}

	// Larger items finish first, so completion order is the reverse of input order.
	out, err := fanout.Map(context.Background(), len(items), items, func(_ context.Context, n int) (int, error) {
		time.Sleep(time.Duration(6-n) * 5 * time.Millisecond)
		return n * 10, nil
	})
	if err != nil {
		t.Fatalf("Map() error = %v, want nil", err)
	}
	for i, n := range items {
		if out[i] != n*10 {
			t.Errorf("out[%d] = %d, want %d", i, out[i], n*10)
		}
	}
}

func TestMap_WorkerBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		workers int
		want    int32
	}{
		{name: "bounded", workers: 2, want: 2},
		{name: "zero means one", workers: 0, want: 1},
		{name: "more workers than items", workers: 50, want: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var running, peak atomic.Int32
			items := make([]int, 6)

			_, err := fanout.Map(context.Background(), tt.workers, items, func(_ context.Context, _ int) (struct{}, error) {
				cur := running.Add(1)
				for {
					old := peak.Load()
					if cur <= old || peak.CompareAndSwap(old, cur) {
						break
					}
				}
				time.Sleep(20 * time.Millisecond)
				running.Add(-1)
				return struct{}{}, nil
			})
			if err != nil {
				t.Fatalf("Map() error = %v, want nil", err)
			}
			if got := peak.Load(); got > tt.want {
				t.Errorf("peak concurrency = %d, want <= %d", got, tt.want)
			}
		})
	}
}

func TestMap_FirstErrorCancelsRemaining(t *testing.T) {
	t.Parallel()

	errBoom := errors.New("boom")
	var started atomic.Int32

	items := []int{0, 1, 2, 3, 4, 5, 6, 7}
	out, err := fanout.Map(context.Background(), 2, items, func(ctx context.Context, n int) (int, error) {
		started.Add(1)
		if n == 1 {
			return 0, errBoom
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(time.Second):
			return n, nil
		}
	})

	if !errors.Is(err, errBoom) {
		t.Fatalf("Map() error = %v, want %v", err, errBoom)
	}
	if out != nil {
		t.Errorf("Map() = %v, want nil outputs on failure", out)
	}
	if got := started.Load(); got >= int32(len(items)) {
		t.Errorf("started = %d, want fewer than %d after failure", got, len(items))
	}
}

func TestMap_ReportsLowestIndexedError(t *testing.T) {
	t.Parallel()

	errFirst := errors.New("first")
	errSecond := errors.New("second")
	release := make(chan struct{})

	_, err := fanout.Map(context.Background(), 2, []int{0, 1}, func(_ context.Context, n int) (int, error) {
		if n == 1 {
			defer close(release)
			return 0, errSecond
		}
		<-release
		return 0, errFirst
	})

	if !errors.Is(err, errFirst) {
		t.Errorf("Map() error = %v, want %v", err, errFirst)
	}
}

func TestMap_ParentCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var calls atomic.Int32
	_, err := fanout.Map(ctx, 1, []int{1, 2, 3}, func(ctx context.Context, n int) (int, error) {
		calls.Add(1)
		return n, ctx.Err()
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Map() error = %v, want context.Canceled", err)
	}
	if got := calls.Load(); got != 0 {
		t.Errorf("calls = %d, want 0 for a cancelled context", got)
	}
}
