package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/support-bot/internal/chatlog"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Chat with the bot interactively",
	Long:  `Starts an interactive session. Each line is classified on its own; there is no conversation memory. Type "exit" or press Ctrl+C to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(true)
		if err != nil {
			return err
		}
		defer a.Close()

		fmt.Println("Hi! Ask me about an order, returns, shipping or anything else. Type \"exit\" to quit.")
		ctx := context.Background()

		for {
			prompt := promptui.Prompt{Label: "You"}
			line, err := prompt.Run()
			if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("reading input: %w", err)
			}

			switch strings.ToLower(strings.TrimSpace(line)) {
			case "exit", "quit", "bye":
				fmt.Println("Goodbye!")
				return nil
			}

			resp := a.classifier.Classify(ctx, chatlog.ChannelCLI, line)
			fmt.Print("Bot: ")
			if err := printResponse(os.Stdout, resp, false); err != nil {
				return err
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
}
