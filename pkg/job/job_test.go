package job_test

import (
	"context"
	"testing"
	"time"

	"github.com/spfbase/payments/pkg/job"
)

func TestService_Start(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ran := make(chan struct{}, 1)

	job.NewService().
		RegisterJob("tick", time.Millisecond, func(context.Context) error {
			select {
			case ran <- struct{}{}:
			default:
			}

			return nil
		}).
		Start(ctx)

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("job never ran")
	}
}

func TestService_StartRecoversFromPanic(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	calls := make(chan struct{}, 2)

	job.NewService().
		RegisterJob("boom", time.Millisecond, func(context.Context) error {
			select {
			case calls <- struct{}{}:
			default:
			}

			panic("boom")
		}).
		Start(ctx)

	// A second run proves the panic was recovered and the schedule survived.
	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("job stopped running")
		}
	}
}
