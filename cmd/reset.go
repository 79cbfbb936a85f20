package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LinosCo/trainbot/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset <session-id>",
	Short: "Delete a session and its transcript",
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
		if err := s.SessionRepo().Delete(ctx, args[0]); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		fmt.Printf("Deleted session %s (%s)\n", rec.SessionID, rec.BotName)
		return nil
	},
}
