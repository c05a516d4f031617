package cmd

import (
	"github.com/spf13/cobra"

	mcpserver "github.com/ziadkadry99/support-bot/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing message classification, order lookup and FAQ search tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(true)
		if err != nil {
			return err
		}
		defer a.Close()

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		a.logger.Info().
			Int("faq_entries", a.catalog.Len()).
			Int("orders", a.orders.Len()).
			Msg("supportbot MCP server started on stdio")

		srv := mcpserver.NewServer(a.classifier, a.orders, a.catalog)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
