package portal

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logSweeper logs sweeper events with timestamp
func logSweeper(message string) {
	log.Printf("[PORTAL-SWEEPER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartSweeper schedules periodic eviction of idle portal state and returns
// the running scheduler so the caller can stop it on shutdown.
func StartSweeper(r *Registry) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@every 10m", func() {
		if n := r.SweepIdle(); n > 0 {
			logSweeper(fmt.Sprintf("evicted %d idle portal sessions", n))
		}
	})
	if err != nil {
		logSweeper("failed to schedule idle sweep: " + err.Error())
		return c
	}

	c.Start()
	return c
}
