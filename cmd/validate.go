package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/LinosCo/trainbot/internal/botconfig"
)

var validateCmd = &cobra.Command{
	Use:   "validate <bot-config>",
	Short: "Validate a bot configuration file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bot, err := botconfig.Load(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Bot:          %s\n", bot.Name)
		fmt.Printf("Topics:       %d\n", len(bot.Topics))
		fmt.Printf("Pass score:   %d\n", bot.PassScore)
		fmt.Printf("Max retries:  %d\n", bot.MaxRetries)
		fmt.Printf("Failure mode: %s\n", bot.FailureMode)
		for _, t := range bot.Topics {
			quizzes := "generated"
			if len(t.Quizzes) > 0 {
				quizzes = fmt.Sprintf("%d authored", len(t.Quizzes))
			}
			fmt.Printf("  - %s (%s): %d objectives, quizzes %s\n",
				t.Label, t.ID, len(t.Objectives), quizzes)
		}
		fmt.Println("OK")
		return nil
	},
}
