package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var convertTo string

var convertCmd = &cobra.Command{
	Use:   "convert <literal>",
	Short: "Convert a coordinate to another element type",
	Long: `Convert a coord2 or coord3 literal component-wise to the --to element type.

Conversion is unchecked. Literals whose components are all integers are read
as int64 and convert exactly; narrowing to a smaller integer type wraps.
Other literals are read as float64: floats truncate toward zero when converted
to an integer type, and a float outside the target's range gives an
implementation-defined value.

  coordcalc convert 'coord2(3.7,-2.2)' --to int            # coord2(3,-2)
  coordcalc convert 'coord2(3000000000,1)' --to int32      # coord2(-1294967296,1)`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVar(&convertTo, "to", "int", "Target element type: "+supportedTypes)
}

func runConvert(cmd *cobra.Command, args []string) error {
	c, err := newCalculator(convertTo)
	if err != nil {
		return err
	}
	res, err := c.Convert(args[0])
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}
	s := newStyles(!color.NoColor)
	fmt.Fprintln(cmd.OutOrStdout(), s.result.Sprint(res))
	return nil
}
