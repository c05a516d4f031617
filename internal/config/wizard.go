package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// RunWizard runs an interactive configuration wizard, saves the result to
// path and returns it.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to supportbot! Let's configure the service.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP port",
		Default:  strconv.Itoa(cfg.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("port: %w", err)
	}
	cfg.Port, _ = strconv.Atoi(portStr)

	// 2. FAQ catalog patterns.
	faqPrompt := promptui.Prompt{
		Label:   "FAQ files (comma-separated globs)",
		Default: strings.Join(cfg.Data.FAQFiles, ","),
	}
	faqStr, err := faqPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("faq files: %w", err)
	}
	if files := splitAndTrim(faqStr); len(files) > 0 {
		cfg.Data.FAQFiles = files
	}

	// 3. Orders file.
	ordersPrompt := promptui.Prompt{
		Label:   "Orders file (leave blank for the built-in sample orders)",
		Default: "",
	}
	cfg.Data.OrdersFile, err = ordersPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("orders file: %w", err)
	}

	// 4. Fallback strategy.
	strategyPrompt := promptui.Select{
		Label: "Fallback reply strategy",
		Items: []string{
			"round_robin: cycle through the replies",
			"random: seeded random choice",
		},
	}
	strategyIdx, _, err := strategyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("fallback strategy: %w", err)
	}
	strategies := []FallbackStrategy{FallbackRoundRobin, FallbackRandom}
	cfg.Fallback.Strategy = strategies[strategyIdx]

	// 5. Chat log.
	chatlogPrompt := promptui.Select{
		Label: "Record classifications to SQLite for analytics?",
		Items: []string{"no", "yes"},
	}
	chatlogIdx, _, err := chatlogPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("chat log: %w", err)
	}
	cfg.ChatLog.Enabled = chatlogIdx == 1

	// 6. Log format.
	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{string(LogConsole), string(LogJSON)},
	}
	_, formatStr, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format: %w", err)
	}
	cfg.Log.Format = LogFormat(formatStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if n <= 0 || n > 65535 {
		return fmt.Errorf("port out of range")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and drops empty parts.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
