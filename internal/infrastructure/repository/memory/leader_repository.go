package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/adjusted-goals/internal/domain/leader"
)

type LeaderRepository struct {
	mu    sync.RWMutex
	items []leader.Leader
}

func NewLeaderRepository(leaders []leader.Leader) *LeaderRepository {
	return &LeaderRepository{items: cloneLeaders(leaders)}
}

func (r *LeaderRepository) ReplaceLeaders(_ context.Context, items []leader.Leader) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = cloneLeaders(items)
	return nil
}

func (r *LeaderRepository) ListLeaders(_ context.Context) ([]leader.Leader, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneLeaders(r.items), nil
}

func cloneLeaders(items []leader.Leader) []leader.Leader {
	out := make([]leader.Leader, 0, len(items))
	for _, item := range items {
		item.TopSeasons = append([]int(nil), item.TopSeasons...)
		out = append(out, item)
	}
	return out
}
