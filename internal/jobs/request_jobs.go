package jobs

import (
	"context"

	"github.com/RupeshP0713/roomrent-backend/internal/logger"
)

// ExpireStaleRequests expires Pending and Accepted rent requests older than the
// configured expiry window. Listing endpoints already sweep lazily on read, so
// this job exists to keep admin stats accurate for requests nobody lists.
func (jr *JobRunner) ExpireStaleRequests() {
	jr.runWithRecovery("ExpireStaleRequests", func() {
		ctx := context.Background()

		count, err := jr.services.Request.ExpireStale(ctx)
		if err != nil {
			logger.Error("Failed to expire stale requests", "error", err)
			return
		}

		logger.Info("Expired stale requests", "count", count)
	})
}
