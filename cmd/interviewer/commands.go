package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"daily-interviewer/internal/adapter/memory"
	"daily-interviewer/internal/adapter/telegram"
	"daily-interviewer/internal/adapter/terminal"
	"daily-interviewer/internal/config"
	"daily-interviewer/internal/observability"
	"daily-interviewer/internal/scheduler"
)

func startCmd() *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start an interview in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(dryRun)
			if err != nil {
				return err
			}
			defer a.close()

			if err := terminal.New(a.interviewer(), cmd.InOrStdin(), cmd.OutOrStdout()).Run(cmd.Context()); err != nil {
				return err
			}
			if o, ok := a.store.(*memory.Overlay); ok {
				fmt.Fprintf(cmd.OutOrStdout(), "Dry run: %d note(s) not written to the vault.\n", len(o.Changes()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "read the vault but keep all writes in memory")
	return cmd
}

func botCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bot",
		Short: "Run interviews over Telegram",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.close()

			if a.cfg.TelegramToken == "" {
				return errors.New("TELEGRAM_BOT_TOKEN is not set")
			}

			bot, err := telegram.NewBot(a.cfg, func() telegram.Session {
				return a.interviewer()
			})
			if err != nil {
				return fmt.Errorf("init telegram bot: %w", err)
			}

			ctx := cmd.Context()
			if a.cfg.ReminderSchedule != "" {
				sched, err := scheduler.New(a.cfg.ReminderSchedule, bot.Remind)
				if err != nil {
					return err
				}
				if err := sched.Start(ctx); err != nil {
					return err
				}
				defer sched.Stop()
			}

			err = bot.Run(ctx)
			if ctx.Err() != nil {
				observability.Logger().Info("shutdown", "reason", err)
				return nil
			}
			return err
		},
	}
}

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recently saved interviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			idx, err := openIndex(cfg)
			if err != nil {
				return err
			}
			defer closeIndex(idx)

			recs, err := idx.Recent(cmd.Context(), limit)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(recs) == 0 {
				fmt.Fprintln(out, "No interviews saved yet.")
				return nil
			}
			for _, r := range recs {
				fmt.Fprintf(out, "%s  %s  (%d exchanges, %s)\n", r.SavedAt.Format("2006-01-02 15:04"), r.Path, r.Exchanges, r.Model)
				fmt.Fprintf(out, "    %s\n", truncate(r.Summary, 120))
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of interviews to show")
	return cmd
}

func configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}
	cmd.AddCommand(configShowCmd())
	cmd.AddCommand(configInitCmd())
	return cmd
}

func configShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration with secrets hidden",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			out, err := config.Render(cfg.Redacted())
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
}

func configInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(configPath); err == nil && !force {
				return fmt.Errorf("%s already exists, use --force to overwrite", configPath)
			} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			if err := config.WriteDefault(configPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func modelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "models",
		Short: "List popular OpenRouter models",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, m := range config.PopularModels {
				marker := " "
				if m == cfg.Model {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s\n", marker, m)
			}
			fmt.Fprintln(out, "\nAny OpenRouter model id can be set with `model` in the config file or INTERVIEWER_MODEL.")
			return nil
		},
	}
}

func truncate(s string, max int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
