package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"bkfetch/ascii"
	"bkfetch/display"
	"bkfetch/registry"
	"bkfetch/sysinfo"
)

func newArtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "art [name|index]",
		Short: "List the bundled art, or print one block",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 1 {
				art, err := ascii.Select(args[0])
				if err != nil {
					return err
				}
				for _, line := range art.Lines {
					fmt.Fprintln(out, line)
				}
				return nil
			}

			arts := ascii.All()
			nameWidth := 0
			for _, art := range arts {
				nameWidth = max(nameWidth, ascii.VisibleWidth(art.Name))
			}
			for i, art := range arts {
				fmt.Fprintf(out, "%2d  %s  %d rows, %d cols\n",
					i+1, sysinfo.PadRight(art.Name, nameWidth), art.Height(), art.Width())
			}
			return nil
		},
	}
}

func newThemesCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the color themes with a swatch preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			profile := outputProfile(out, cfg.NoColor)

			names := display.ThemeNames()
			nameWidth := 0
			for _, name := range names {
				nameWidth = max(nameWidth, ascii.VisibleWidth(name))
			}
			for _, th := range display.Themes() {
				p := display.NewPrinter(th, display.WithProfile(profile))
				marker := " "
				if strings.EqualFold(th.Name, cfg.Color) {
					marker = "*"
				}
				fmt.Fprintf(out, "%s %s  %s\n", marker, sysinfo.PadRight(th.Name, nameWidth),
					p.Row("", "", registry.ColorSwatchRow))
			}
			return nil
		},
	}
}

func newConfigCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load(cmd)
			if err != nil {
				return err
			}
			b, err := cfg.Dump()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(b)
			return err
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "bkfetch version %s\n", version)
		},
	}
}
