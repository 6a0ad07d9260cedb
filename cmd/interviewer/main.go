package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	configPath string
	envPath    string
	vaultPath  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "interviewer",
		Short:        "Daily reflection interviews for a Markdown notes vault",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "interviewer.yaml", "config file path")
	rootCmd.PersistentFlags().StringVar(&envPath, "env", ".env", "dotenv file path")
	rootCmd.PersistentFlags().StringVar(&vaultPath, "vault", "", "vault directory (overrides config)")

	rootCmd.AddCommand(startCmd())
	rootCmd.AddCommand(botCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(modelsCmd())

	ctx, cancel := signal.NotifyContext(context.Background(),
		syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1)
	}
}
