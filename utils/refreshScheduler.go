package utils

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[DATASET-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartRefreshScheduler regenerates the dataset on the given cron spec while
// the preview server is running. A failed regeneration keeps the previous
// artifacts in place.
func StartRefreshScheduler(spec string, regenerate func() error) (*cron.Cron, error) {
	c := cron.New()

	_, err := c.AddFunc(spec, func() {
		logScheduler("Starting scheduled dataset regeneration")
		if err := regenerate(); err != nil {
			logScheduler("Regeneration failed: " + err.Error())
			return
		}
		logScheduler("Regeneration completed")
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	logScheduler("Refresh scheduler started with spec: " + spec)
	return c, nil
}
