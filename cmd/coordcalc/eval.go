package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <lhs> <op> <rhs>",
	Short: "Evaluate 2D coordinate arithmetic",
	Long: `Evaluate one arithmetic operation on a coord2 value.

The left operand is a coord2 literal. The operator is one of + - * /;
x is accepted as an alias for * to avoid shell globbing.
The right operand is a coord2 literal (for + and -) or a scalar.

  coordcalc eval 'coord2(1,2)' + 'coord2(3,4)'   # coord2(4,6)
  coordcalc eval 'coord2(1,2)' '*' 2.5           # coord2(2.5,5)
  coordcalc --type int eval 'coord2(7,9)' / 2    # coord2(3,4)

coord3 operands are rejected: 3D coordinates carry no arithmetic.`,
	Args: cobra.ExactArgs(3),
	RunE: runEval,
}

func runEval(cmd *cobra.Command, args []string) error {
	c, err := newCalculator(elemType)
	if err != nil {
		return err
	}
	lhs, op, rhs := args[0], args[1], args[2]
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "eval: type=%s lhs=%s op=%s rhs=%s\n", elemType, lhs, op, rhs)
	}
	res, err := c.Eval(lhs, op, rhs)
	if err != nil {
		return fmt.Errorf("eval: %w", err)
	}
	s := newStyles(!color.NoColor)
	fmt.Fprintln(cmd.OutOrStdout(), s.result.Sprint(res))
	return nil
}
