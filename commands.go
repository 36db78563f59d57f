package main

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strconv"

	"github.com/slack-go/slack"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "seasonguide",
		Short:         "Generate interactive D3 season guide pages from YAML documents",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(
		newGenerateCmd(),
		newBuildsCmd(),
		newProgressCmd(),
		newStatsCmd(),
		newWatchCmd(),
		newScheduleCmd(),
		newCoachCmd(),
		newDeliverCmd(),
	)
	return root
}

func openDB(cfg Config) (*sql.DB, error) {
	db, err := InitDB(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	return db, nil
}

// progressNamespaceFor derives the season-scoped namespace from the
// journey document, matching the page's localStorage key.
func progressNamespaceFor(cfg Config) (string, error) {
	journey, err := LoadJourney(cfg.DataDir)
	if err != nil {
		return "", err
	}
	return ProgressNamespace(journey.Season.Number), nil
}

// knownControlIDs renders the page in memory and extracts every checkbox
// id, so the progress commands accept exactly what the page tracks.
func knownControlIDs(cfg Config, buildName string) ([]string, error) {
	docs, err := LoadGuideDocs(cfg.DataDir, buildName)
	if err != nil {
		return nil, err
	}
	page, err := GeneratePage(docs)
	if err != nil {
		return nil, err
	}
	return CollectControlIDs(page), nil
}

func newGenerateCmd() *cobra.Command {
	var buildName, output string
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate the guide HTML page",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := LoadConfig()
			if buildName == "" {
				buildName = cfg.DefaultBuild
			}
			if output == "" {
				output = cfg.OutputPath
			}
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			_, err = GenerateGuide(db, cfg.DataDir, buildName, output)
			var notFound *ErrBuildNotFound
			if errors.As(err, &notFound) {
				fmt.Printf("Error: Build '%s' not found!\n", notFound.Name)
				fmt.Println("Available builds:")
				for _, name := range notFound.Available {
					fmt.Printf("  - %s\n", name)
				}
				return err
			}
			return err
		},
	}
	cmd.Flags().StringVarP(&buildName, "build", "b", "", "build file name (without .yaml)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output HTML file")
	return cmd
}

func newBuildsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "builds",
		Short: "List available build documents",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := LoadConfig()
			builds := ListBuilds(cfg.DataDir)
			if len(builds) == 0 {
				fmt.Println("No build documents found in", cfg.DataDir)
				return nil
			}
			for _, name := range builds {
				fmt.Printf("  - %s\n", name)
			}
			return nil
		},
	}
	cmd.AddCommand(newBuildsHistoryCmd())
	return cmd
}

func newBuildsHistoryCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent guide generations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := LoadConfig()
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			records, err := RecentGenerations(db, limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No generations recorded yet.")
				return nil
			}
			for _, rec := range records {
				fmt.Printf("%s  %-20s  %8.1f KB  %s\n",
					rec.GeneratedAt.Format("2006-01-02 15:04"), rec.Build,
					float64(rec.SizeBytes)/1024, rec.OutputPath)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of entries to show")
	return cmd
}

func newProgressCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Inspect and edit the season checklist mirror",
	}
	cmd.AddCommand(
		newProgressShowCmd(),
		newProgressSetCmd(),
		newProgressResetCmd(),
	)
	return cmd
}

func newProgressShowCmd() *cobra.Command {
	var buildName string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show checklist completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := LoadConfig()
			if buildName == "" {
				buildName = cfg.DefaultBuild
			}
			ns, err := progressNamespaceFor(cfg)
			if err != nil {
				return err
			}
			ids, err := knownControlIDs(cfg, buildName)
			if err != nil {
				return err
			}
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			checked, total, err := ChecklistProgress(db, ns, ids)
			if err != nil {
				return err
			}
			fmt.Printf("%s: %d / %d (%d%%)\n", ns, checked, total, ProgressPercent(checked, total))
			return nil
		},
	}
	cmd.Flags().StringVarP(&buildName, "build", "b", "", "build file name (without .yaml)")
	return cmd
}

func newProgressSetCmd() *cobra.Command {
	var buildName string
	var unset bool
	cmd := &cobra.Command{
		Use:   "set <control-id>...",
		Short: "Mark checklist controls done (or not done with --off)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := LoadConfig()
			if buildName == "" {
				buildName = cfg.DefaultBuild
			}
			ns, err := progressNamespaceFor(cfg)
			if err != nil {
				return err
			}
			ids, err := knownControlIDs(cfg, buildName)
			if err != nil {
				return err
			}
			known := make(map[string]bool, len(ids))
			for _, id := range ids {
				known[id] = true
			}
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			for _, id := range args {
				if !known[id] {
					fmt.Printf("Skipping unknown control: %s\n", id)
					continue
				}
				if err := SetChecked(db, ns, id, !unset); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&buildName, "build", "b", "", "build file name (without .yaml)")
	cmd.Flags().BoolVar(&unset, "off", false, "mark the controls as not done")
	return cmd
}

func newProgressResetCmd() *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Clear all checklist state (stat values stay)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return fmt.Errorf("refusing to reset without --yes")
			}
			cfg := LoadConfig()
			ns, err := progressNamespaceFor(cfg)
			if err != nil {
				return err
			}
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := ResetChecklist(db, ns); err != nil {
				return err
			}
			fmt.Printf("Checklist %s reset.\n", ns)
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Record character stats and evaluate them against the breakpoints",
	}
	cmd.AddCommand(newStatsSetCmd(), newStatsShowCmd())
	return cmd
}

func statKeyKnown(key string) bool {
	for _, stat := range TrackedStats {
		if stat.Key == key {
			return true
		}
	}
	return false
}

func newStatsSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <stat> <value>",
		Short: "Record one stat value (cdr, rcr, chc, chd, cold, ad)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			if !statKeyKnown(key) {
				return fmt.Errorf("unknown stat '%s'", key)
			}
			value, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("invalid value '%s': %w", args[1], err)
			}
			cfg := LoadConfig()
			ns, err := progressNamespaceFor(cfg)
			if err != nil {
				return err
			}
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			return SetStatValue(db, ns, key, value)
		},
	}
	return cmd
}

func newStatsShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Evaluate the recorded stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := LoadConfig()
			ns, err := progressNamespaceFor(cfg)
			if err != nil {
				return err
			}
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			values, err := LoadStatValues(db, ns)
			if err != nil {
				return err
			}
			eval := EvaluateStats(values)
			for _, res := range eval.Results {
				fmt.Printf("%-12s %8.1f%s  %s\n", res.Stat.Name, res.Value, res.Stat.Breakpoint.Unit, res.Tier)
			}
			fmt.Println()
			fmt.Println(eval.Summary())
			return nil
		},
	}
	return cmd
}

func newWatchCmd() *cobra.Command {
	var buildName string
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild the guide whenever a data file changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := LoadConfig()
			if buildName == "" {
				buildName = cfg.DefaultBuild
			}
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			if _, err := GenerateGuide(db, cfg.DataDir, buildName, cfg.OutputPath); err != nil {
				return err
			}
			return WatchAndRebuild(cfg, db, buildName)
		},
	}
	cmd.Flags().StringVarP(&buildName, "build", "b", "", "build file name (without .yaml)")
	return cmd
}

func newScheduleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schedule",
		Short: "Run the cron-based rebuild scheduler",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := LoadConfig()
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			var api *slack.Client
			if cfg.SlackConfigured() {
				api = slack.New(cfg.SlackBotToken)
			}
			if !StartRebuildScheduler(cfg, db, api) {
				return fmt.Errorf("rebuild_schedule is not set or invalid")
			}
			log.Println("Scheduler running. Ctrl-C to stop.")
			select {}
		},
	}
	return cmd
}

func newCoachCmd() *cobra.Command {
	var buildName string
	var post bool
	cmd := &cobra.Command{
		Use:   "coach",
		Short: "Ask the coach what to improve, based on the recorded stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := LoadConfig()
			if buildName == "" {
				buildName = cfg.DefaultBuild
			}
			docs, err := LoadGuideDocs(cfg.DataDir, buildName)
			if err != nil {
				return err
			}
			ns := ProgressNamespace(docs.Journey.Season.Number)

			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			values, err := LoadStatValues(db, ns)
			if err != nil {
				return err
			}
			if len(values) == 0 {
				return fmt.Errorf("no stats recorded yet; use 'seasonguide stats set' first")
			}

			advice, usage, err := CoachAdvice(cfg, docs, values)
			if err != nil {
				return err
			}
			fmt.Println(advice)
			log.Printf("coach done tokens=%d", usage.TotalTokens())

			if post {
				if !cfg.SlackConfigured() {
					return fmt.Errorf("slack_bot_token and slack_channel_id must be set for --post")
				}
				api := slack.New(cfg.SlackBotToken)
				return PostCoachAdvice(api, cfg.SlackChannelID, advice)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&buildName, "build", "b", "", "build file name (without .yaml)")
	cmd.Flags().BoolVar(&post, "post", false, "post the advice to the Slack channel")
	return cmd
}

func newDeliverCmd() *cobra.Command {
	var buildName string
	cmd := &cobra.Command{
		Use:   "deliver",
		Short: "Generate the guide and upload it to the Slack channel",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := LoadConfig()
			if !cfg.SlackConfigured() {
				return fmt.Errorf("slack_bot_token and slack_channel_id must be set")
			}
			if buildName == "" {
				buildName = cfg.DefaultBuild
			}
			db, err := openDB(cfg)
			if err != nil {
				return err
			}
			defer db.Close()

			result, err := GenerateGuide(db, cfg.DataDir, buildName, cfg.OutputPath)
			if err != nil {
				return err
			}
			api := slack.New(cfg.SlackBotToken)
			return DeliverGuide(api, cfg.SlackChannelID, result,
				fmt.Sprintf("Fresh guide for %s", result.Build))
		},
	}
	cmd.Flags().StringVarP(&buildName, "build", "b", "", "build file name (without .yaml)")
	return cmd
}
