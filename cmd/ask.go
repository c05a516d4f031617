package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/support-bot/internal/chatlog"
	"github.com/ziadkadry99/support-bot/internal/intent"
)

var askCmd = &cobra.Command{
	Use:   "ask [message]",
	Short: "Classify a single message and print the reply",
	Long:  `Runs one message through the order lookup, FAQ scorer and fallback stages and prints the bot's reply.`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runAsk,
}

func init() {
	askCmd.Flags().Bool("json", false, "print the full response envelope as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	jsonOutput, _ := cmd.Flags().GetBool("json")

	a, err := buildApp(true)
	if err != nil {
		return err
	}
	defer a.Close()

	resp := a.classifier.Classify(context.Background(), chatlog.ChannelCLI, strings.Join(args, " "))
	return printResponse(os.Stdout, resp, jsonOutput)
}

// printResponse writes a response either as indented JSON or as the reply
// text followed by its label.
func printResponse(w io.Writer, resp intent.Response, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	fmt.Fprintln(w, resp.Response)
	label := fmt.Sprintf("[%s, confidence %d%%]", resp.Intent, resp.Confidence)
	if resp.FAQQuestion != "" {
		label += fmt.Sprintf(" matched %q", resp.FAQQuestion)
	}
	fmt.Fprintln(w, label)
	return nil
}
