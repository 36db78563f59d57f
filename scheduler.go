package main

import (
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/slack-go/slack"
)

// StartRebuildScheduler starts a cron-based scheduler that regenerates the
// guide on the configured schedule and, when Slack is configured, delivers
// the fresh page to the channel.
// The schedule is a standard 5-field cron expression (minute hour day-of-month month day-of-week).
// Examples: "0 4 * * *" (daily 4am), "0 4 * * 5" (Fridays 4am).
func StartRebuildScheduler(cfg Config, db *sql.DB, api *slack.Client) bool {
	schedule := strings.TrimSpace(cfg.RebuildSchedule)
	if schedule == "" {
		log.Println("Scheduled rebuilds disabled (rebuild_schedule not set)")
		return false
	}

	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	sched, err := parser.Parse(schedule)
	if err != nil {
		log.Printf("Invalid rebuild_schedule '%s': %v — scheduled rebuilds disabled", schedule, err)
		return false
	}

	log.Printf("Guide rebuild scheduled (cron: %s) for build %s", schedule, cfg.DefaultBuild)

	go func() {
		for {
			now := time.Now().In(cfg.Location)
			next := sched.Next(now)
			wait := next.Sub(now)
			log.Printf("Next rebuild at %s (in %s)", next.Format("Mon Jan 2 15:04"), wait.Round(time.Minute))

			time.Sleep(wait)

			result, genErr := GenerateGuide(db, cfg.DataDir, cfg.DefaultBuild, cfg.OutputPath)
			if genErr != nil {
				log.Printf("Scheduled rebuild error: %v", genErr)
				continue
			}
			log.Printf("Scheduled rebuild complete: %s (%.1f KB)", result.OutputPath, float64(result.SizeBytes)/1024)

			if api != nil && cfg.SlackConfigured() {
				comment := fmt.Sprintf("Scheduled rebuild of %s", result.Build)
				if deliverErr := DeliverGuide(api, cfg.SlackChannelID, result, comment); deliverErr != nil {
					log.Printf("Error delivering rebuilt guide: %v", deliverErr)
				}
			}
		}
	}()
	return true
}
