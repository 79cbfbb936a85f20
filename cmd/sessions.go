package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/LinosCo/trainbot/internal/store"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Inspect recorded training sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sessions",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		sessions, err := s.SessionRepo().List(context.Background(), limit)
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions found.")
			return nil
		}

		fmt.Printf("%-36s  %-20s  %-9s  %-19s  %-5s  %s\n",
			"Session", "Bot", "Status", "Started", "Score", "Passed")
		fmt.Println(strings.Repeat("─", 104))
		for _, rec := range sessions {
			passed := ""
			if rec.Status != store.SessionInProgress {
				passed = "no"
				if rec.Passed {
					passed = "yes"
				}
			}
			fmt.Printf("%-36s  %-20s  %-9s  %-19s  %-5d  %s\n",
				rec.SessionID,
				truncate(rec.BotName, 20),
				rec.Status,
				rec.StartedAt.Local().Format("2006-01-02 15:04:05"),
				rec.OverallScore,
				passed,
			)
		}
		return nil
	},
}

var sessionsShowCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show one session with its transcript",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		rec, err := s.SessionRepo().Get(ctx, args[0])
		if err != nil {
			return fmt.Errorf("get session: %w", err)
		}
		if rec == nil {
			return fmt.Errorf("session %s not found", args[0])
		}

		fmt.Printf("Session:  %s\n", rec.SessionID)
		fmt.Printf("Bot:      %s\n", rec.BotName)
		fmt.Printf("Status:   %s\n", rec.Status)
		fmt.Printf("Phase:    %s\n", rec.State.Phase)
		fmt.Printf("Started:  %s\n", rec.StartedAt.Local().Format("2006-01-02 15:04:05"))
		if rec.CompletedAt != nil {
			fmt.Printf("Finished: %s\n", rec.CompletedAt.Local().Format("2006-01-02 15:04:05"))
			fmt.Printf("Score:    %d (passed: %v)\n", rec.OverallScore, rec.Passed)
		}

		if len(rec.State.Results) > 0 {
			fmt.Println("\nTopic results:")
			for _, r := range rec.State.Results {
				fmt.Printf("  %-24s  %3d  %-12s  retries %d\n",
					truncate(r.TopicLabel, 24), r.Score, r.Status, r.Retries)
			}
		}

		msgs, err := s.MessageRepo().BySession(ctx, args[0])
		if err != nil {
			return fmt.Errorf("load transcript: %w", err)
		}
		if len(msgs) > 0 {
			sep := strings.Repeat("─", 60)
			fmt.Println()
			fmt.Println(sep)
			for _, msg := range msgs {
				fmt.Printf("[%s] %s (%s)\n%s\n\n",
					msg.Timestamp.Local().Format("15:04:05"), msg.Role, msg.Phase, msg.Content)
			}
		}
		return nil
	},
}

func init() {
	sessionsListCmd.Flags().IntP("limit", "n", 20, "Number of sessions to show")

	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsCmd.AddCommand(sessionsShowCmd)
}
