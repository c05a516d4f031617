package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"github.com/ziadkadry99/support-bot/internal/chatlog"
	"github.com/ziadkadry99/support-bot/internal/config"
	"github.com/ziadkadry99/support-bot/internal/faq"
	"github.com/ziadkadry99/support-bot/internal/intent"
	"github.com/ziadkadry99/support-bot/internal/logging"
	"github.com/ziadkadry99/support-bot/internal/orders"
)

// app is the immutable snapshot every command classifies against.
type app struct {
	cfg        *config.Config
	logger     zerolog.Logger
	catalog    *faq.Catalog
	orders     *orders.Table
	router     *intent.Router
	chatlog    *chatlog.Store
	classifier *chatlog.Recording
}

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `supportbot init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) zerolog.Logger {
	level := cfg.Log.Level
	if verbose {
		level = "debug"
	}
	return logging.New(logging.Options{
		Level:  level,
		Format: string(cfg.Log.Format),
		Output: os.Stderr,
	})
}

// buildApp loads config and datasets. The event log is opened only when
// withChatlog is set and the config enables it; callers must Close the app.
func buildApp(withChatlog bool) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg)

	catalog, err := faq.Load(cfg.Data.FAQFiles...)
	if err != nil {
		return nil, fmt.Errorf("loading faq catalog: %w", err)
	}
	if catalog.Len() == 0 {
		logger.Warn().Strs("patterns", cfg.Data.FAQFiles).Msg("faq catalog is empty, every message without an order will get a generic reply")
	} else {
		logger.Debug().Strs("files", catalog.Sources()).Int("entries", catalog.Len()).Msg("faq catalog loaded")
	}

	table, err := loadOrders(cfg, logger)
	if err != nil {
		return nil, err
	}

	router := intent.NewRouter(table, faq.NewScorer(catalog),
		intent.WithPicker(newPicker(cfg)),
		intent.WithFallbackReplies(cfg.Fallback.Replies),
	)

	a := &app{
		cfg:     cfg,
		logger:  logger,
		catalog: catalog,
		orders:  table,
		router:  router,
	}

	if withChatlog && cfg.ChatLog.Enabled {
		store, err := chatlog.Open(cfg.ChatLog.Path)
		if err != nil {
			return nil, fmt.Errorf("opening chat log: %w", err)
		}
		a.chatlog = store
		logger.Debug().Str("path", cfg.ChatLog.Path).Msg("chat log enabled")
	}
	a.classifier = chatlog.NewRecording(router, a.chatlog, logger)

	return a, nil
}

// Close releases the event log if one was opened.
func (a *app) Close() {
	if a.chatlog != nil {
		if err := a.chatlog.Close(); err != nil {
			a.logger.Warn().Err(err).Msg("closing chat log")
		}
	}
}

// loadOrders returns the configured order table, or the built-in sample
// orders when none is configured. A configured file that does not exist
// degrades to an empty table.
func loadOrders(cfg *config.Config, logger zerolog.Logger) (*orders.Table, error) {
	if cfg.Data.OrdersFile == "" {
		return orders.SampleTable(), nil
	}

	table, err := orders.LoadFile(cfg.Data.OrdersFile)
	if errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Str("path", cfg.Data.OrdersFile).Msg("orders file not found, order lookups will fall through to the faq")
		return orders.NewTable(nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading orders: %w", err)
	}
	logger.Debug().Str("path", cfg.Data.OrdersFile).Int("orders", table.Len()).Msg("orders loaded")
	return table, nil
}

func newPicker(cfg *config.Config) intent.Picker {
	if cfg.Fallback.Strategy == config.FallbackRandom {
		return intent.NewRandomPicker(cfg.Fallback.Seed)
	}
	return &intent.RoundRobin{}
}
