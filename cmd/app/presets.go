package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/akyairhashvil/flashtimer/internal/config"
	"github.com/akyairhashvil/flashtimer/internal/countdown"
	"github.com/akyairhashvil/flashtimer/internal/models"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newPresetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List and edit saved presets",
	}
	cmd.AddCommand(newPresetsListCmd())
	cmd.AddCommand(newPresetsAddCmd())
	cmd.AddCommand(newPresetsRemoveCmd())
	cmd.AddCommand(newPresetsClearCmd())
	return cmd
}

func newPresetsListCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openCLIApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			return writePresets(cmd.OutOrStdout(), a.store.Presets(), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "Output format: text, json, yaml")
	return cmd
}

func newPresetsAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add SECONDS",
		Short: "Append a preset; values that are not positive are ignored",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openCLIApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			seconds, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid seconds %q", args[0])
			}
			return a.store.Add(cmd.Context(), seconds)
		},
	}
}

// newPresetsRemoveCmd takes the 1-based position shown by "presets list".
func newPresetsRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove POSITION",
		Short: "Remove the preset at a list position; unknown positions are ignored",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openCLIApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			pos, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid position %q", args[0])
			}
			return a.store.Remove(cmd.Context(), pos-1)
		},
	}
}

func newPresetsClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Delete all saved presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openCLIApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			return a.store.Clear(cmd.Context())
		},
	}
}

func openCLIApp(cmd *cobra.Command) (*app, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}
	return openApp(cmd.Context(), env, cmd.ErrOrStderr())
}

func writePresets(w io.Writer, list []models.Preset, format string) error {
	if list == nil {
		list = []models.Preset{}
	}
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(list)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(list); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		if len(list) == 0 {
			_, err := fmt.Fprintln(w, "No presets.")
			return err
		}
		for _, p := range list {
			if _, err := fmt.Fprintf(w, "%2d. %-20s %s\n", p.Index+1, p.Label, countdown.FormatClock(p.Seconds)); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
