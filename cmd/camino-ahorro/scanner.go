package main

import (
	"time"

	"github.com/SebastianignacioDS/camino-ahorro/internal/logging"
	"github.com/SebastianignacioDS/camino-ahorro/internal/service"
	"github.com/SebastianignacioDS/camino-ahorro/internal/storage"
)

// startTimeoutScanner claims sessions whose action deadline has passed and
// ends them through service.HandleTimedOutSession. Claims carry a short TTL
// so a crashed worker's batch is retried by another instance.
func startTimeoutScanner(repo storage.Repository, workerID string) {
	go func() {
		ticker := time.NewTicker(5 * time.Second)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			ids, err := repo.ClaimTimedOutSessionIDs(now, 20, 2*time.Minute, workerID)
			if err != nil {
				logging.Error("timeout scanner failed to list ids", err, nil)
				continue
			}
			// process each id sequentially (keeps DB safe under SQLite)
			for _, id := range ids {
				s, err := repo.GetSessionByID(id)
				if err != nil {
					continue
				}
				if err := service.HandleTimedOutSession(repo, s); err != nil {
					logging.Error("failed to expire session", err, nil)
				}
			}
		}
	}()
}
