package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var formatCmd = &cobra.Command{
	Use:   "format <x> <y> [z]",
	Short: "Print the canonical form of a coordinate",
	Long: `Build a coordinate from two or three component values and print its
canonical text, e.g. "coordcalc format 1 2.5" prints coord2(1,2.5).

Components are parsed as the --type element type, so --type int rejects 1.5.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: runFormat,
}

func runFormat(cmd *cobra.Command, args []string) error {
	c, err := newCalculator(elemType)
	if err != nil {
		return err
	}
	text, err := c.Format(args)
	if err != nil {
		return fmt.Errorf("format: %w", err)
	}
	s := newStyles(!color.NoColor)
	fmt.Fprintln(cmd.OutOrStdout(), s.result.Sprint(text))
	return nil
}
