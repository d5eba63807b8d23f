package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/csv2html/internal/config"
	"github.com/cleared-dev/csv2html/internal/convert"
	"github.com/cleared-dev/csv2html/internal/render"
)

type convertFlags struct {
	configPath string
	envFile    string
	title      string
	credit     bool
	styles     []string
	scripts    []string
}

func newConvertCommand(logger func(*cobra.Command) *slog.Logger) *cobra.Command {
	var f convertFlags

	cmd := &cobra.Command{
		Use:   "convert <input.csv> <output.html>",
		Short: "Convert a transaction CSV export to an HTML ledger",
		Long: "Convert a GnuCash transaction CSV export to an HTML ledger with a running\n" +
			"balance per account. Use - as the output to write to stdout.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(f)
			if err != nil {
				return err
			}
			return runConvert(args[0], args[1], cfg, logger(cmd))
		},
	}

	cmd.Flags().StringVar(&f.configPath, "config", "", "config file (default: none)")
	cmd.Flags().StringVar(&f.envFile, "env-file", "", "load CSV2HTML_* variables from this file")
	cmd.Flags().StringVar(&f.title, "title", "", "title of the page")
	cmd.Flags().BoolVar(&f.credit, "credit", false, "invert the sign of the running balance")
	cmd.Flags().StringArrayVar(&f.styles, "style", nil, "include a CSS stylesheet (repeatable)")
	cmd.Flags().StringArrayVar(&f.scripts, "script", nil, "include a JavaScript file (repeatable)")

	return cmd
}

// resolveConfig layers defaults, the config file, the environment and the
// command-line flags, in increasing precedence.
func resolveConfig(f convertFlags) (*config.Config, error) {
	var file *config.Config
	if f.configPath != "" {
		var err error
		file, err = config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
	}

	env, err := config.FromEnv(f.envFile)
	if err != nil {
		return nil, err
	}

	flags := &config.Config{
		Title:   f.title,
		Credit:  f.credit,
		Styles:  f.styles,
		Scripts: f.scripts,
	}

	cfg := config.Default()
	if err := config.Merge(cfg, file, env, flags); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runConvert(input, output string, cfg *config.Config, log *slog.Logger) error {
	stats, err := convert.File(input, output, convert.Options{
		Document: render.Document{
			Title:   cfg.Title,
			Styles:  cfg.Styles,
			Scripts: cfg.Scripts,
		},
		InvertBalanceSign: cfg.Credit,
		Logger:            log,
	})
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	log.Info("converted", "input", input, "output", output,
		"rows", stats.Rows, "transactions", stats.Transactions, "accounts", stats.Accounts)
	return nil
}
