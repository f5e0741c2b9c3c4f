package handler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/Razboth/Servicedesk-sub005/internal/domain"
)

// acquireCommitLock serializes clear-then-recreate for one schedule. Two
// editors saving the same month concurrently would otherwise interleave the
// delete and insert phases and corrupt the roster. The lock is a redis
// SET NX with a TTL so a crashed commit cannot wedge the schedule forever.
func (h *Handler) acquireCommitLock(r *http.Request, schedule *domain.Schedule) (func(), error) {
	key := fmt.Sprintf("commit_lock_%s_%d_%d", schedule.BranchID, schedule.Year, schedule.Month)
	ttl := time.Duration(h.config.Redis.CommitLockTTL) * time.Second

	ctx, cancel := context.WithTimeout(r.Context(), time.Duration(h.config.Redis.OperationExpiration)*time.Second)
	defer cancel()

	ok, err := h.redisClient.SetNX(ctx, key, "1", ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.New("another save for this schedule is in progress, try again shortly")
	}

	unlock := func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Duration(h.config.Redis.OperationExpiration)*time.Second)
		defer cancel()
		if err := h.redisClient.Del(ctx, key).Err(); err != nil {
			slog.Warn("could not release commit lock, it will expire on its own", "key", key, "error", err)
		}
	}
	return unlock, nil
}
