package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/akyairhashvil/flashtimer/internal/config"
	"github.com/akyairhashvil/flashtimer/internal/tui"
	"github.com/akyairhashvil/flashtimer/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("flashtimer needs an interactive terminal; use a subcommand instead")

var isTerminal = term.IsTerminal

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   config.AppName,
		Short: "Countdown timer with saved presets",
		Long: `flashtimer keeps a list of countdown presets and runs a full-screen
countdown that flashes when it reaches zero.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context())
		},
	}

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newPresetsCmd())
	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "flashtimer version %s\n", tui.AppVersion)
			fmt.Fprintf(out, "commit: %s\n", tui.GitCommit)
			fmt.Fprintf(out, "date: %s\n", tui.BuildTime)
		},
	}
}

func runTUI(ctx context.Context) error {
	if !isTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}
	env, err := config.LoadEnv()
	if err != nil {
		return err
	}
	dataDir := resolveDataDir(env)
	logFile, err := util.OpenLogFile(dataDir, config.LogFileName)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer logFile.Close()

	a, err := openApp(ctx, env, logFile)
	if err != nil {
		return err
	}
	defer a.Close()

	if !tui.SetTheme(env.Theme) {
		a.logger.Warn("unknown theme, using default", "theme", env.Theme)
	}

	stopPage := func() {}
	if env.ServeAddr != "" {
		stopPage = a.startPage(ctx, env.ServeAddr, env.Upstream)
	}

	model := tui.NewModel(ctx, a.store, a.logger, util.ReportsDir(config.AppName))
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	stopPage()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func stderrOr(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}
