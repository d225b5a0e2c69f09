package middleware

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/mkamande/shopsphere-admin/internal/domain/entity"
)

type fakeIdempotencyRepo struct {
	deletes atomic.Int64
}

func (f *fakeIdempotencyRepo) GetByKey(ctx context.Context, key, adminID string) (*entity.IdempotencyKey, error) {
	return nil, nil
}

func (f *fakeIdempotencyRepo) Create(ctx context.Context, ikey *entity.IdempotencyKey) error {
	return nil
}

func (f *fakeIdempotencyRepo) DeleteExpired(ctx context.Context) error {
	f.deletes.Add(1)
	return nil
}

func TestIdempotencyCleanupRunsAndStops(t *testing.T) {
	repo := &fakeIdempotencyRepo{}
	ctx, cancel := context.WithCancel(context.Background())

	StartIdempotencyCleanup(ctx, repo, 5*time.Millisecond)

	deadline := time.Now().Add(time.Second)
	for repo.deletes.Load() < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("cleanup ran %d times, want at least 2", repo.deletes.Load())
		}
		time.Sleep(time.Millisecond)
	}

	cancel()
	time.Sleep(20 * time.Millisecond)
	after := repo.deletes.Load()
	time.Sleep(30 * time.Millisecond)
	if repo.deletes.Load() != after {
		t.Error("cleanup kept running after cancellation")
	}
}
