package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/support-bot/internal/analytics"
	"github.com/ziadkadry99/support-bot/internal/api"
	"github.com/ziadkadry99/support-bot/internal/bots"
	"github.com/ziadkadry99/support-bot/internal/server"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP chat API",
	Long:  `Starts the chat API with the order, analytics, websocket and Slack/Teams webhook endpoints.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := buildApp(true)
		if err != nil {
			return err
		}
		defer a.Close()

		if cmd.Flags().Changed("port") {
			a.cfg.Port = serverPort
		}

		srv := server.New(server.Config{
			Host:              a.cfg.Host,
			Port:              a.cfg.Port,
			AllowAll:          a.cfg.CORS.AllowAll,
			AllowedOrigins:    a.cfg.CORS.AllowedOrigins,
			RequestsPerSecond: a.cfg.RateLimit.RequestsPerSecond,
			Burst:             a.cfg.RateLimit.Burst,
		}, a.logger)

		registerAllRoutes(srv, a)

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			a.logger.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			srv.Shutdown(shutdownCtx)
		}()

		a.logger.Info().
			Str("version", Version).
			Int("faq_entries", a.catalog.Len()).
			Int("orders", a.orders.Len()).
			Bool("chatlog", a.chatlog != nil).
			Msg("supportbot server starting")

		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	},
}

// registerAllRoutes wires the feature routes onto the server router.
func registerAllRoutes(srv *server.Server, a *app) {
	r := srv.Router()

	// Chat, orders, analytics and websocket.
	var stats analytics.StatsSource
	if a.chatlog != nil {
		stats = a.chatlog
	}
	api.RegisterRoutes(r, api.NewHandler(a.classifier, a.orders, stats, a.logger))

	// Bots (Slack & Teams)
	botGateway := bots.NewGateway(bots.NewProcessor(a.classifier))
	slackHandler := bots.NewSlackHandler(botGateway, a.cfg.Bots.SlackSigningSecret)
	teamsHandler := bots.NewTeamsHandler(botGateway)
	bots.RegisterRoutes(r, slackHandler, teamsHandler)
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 5000, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
