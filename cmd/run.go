package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/LinosCo/trainbot/internal/botconfig"
	"github.com/LinosCo/trainbot/internal/llm"
	"github.com/LinosCo/trainbot/internal/store"
	"github.com/LinosCo/trainbot/internal/training"
	"github.com/LinosCo/trainbot/internal/tui"
	"github.com/LinosCo/trainbot/internal/tutor"
)

// runSession opens the store, builds the engine, and launches the TUI.
func runSession(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	botPath := ""
	if len(args) > 0 {
		botPath = args[0]
	} else {
		botPath = os.Getenv("TRAINBOT_BOT")
	}
	if botPath == "" {
		return fmt.Errorf("no bot configuration: pass a YAML path or set TRAINBOT_BOT")
	}

	bot, err := botconfig.Load(botPath)
	if err != nil {
		return fmt.Errorf("load bot config: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		return fmt.Errorf("configure LLM provider: %w", err)
	}

	tut := tutor.NewService(provider, tutor.DefaultConfig())
	svc := training.NewService(bot, tut, st.SessionRepo(), st.MessageRepo())

	resumeID, _ := cmd.Flags().GetString("resume")
	return tui.Run(svc, resumeID)
}
