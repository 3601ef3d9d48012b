package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var errEmptyBatch = errors.New("batch file has no ops")

// batchFile is the YAML layout read by the batch command.
//
//	type: int
//	ops:
//	  - {lhs: "coord2(1,2)", op: "+", rhs: "coord2(3,4)"}
//	  - {lhs: "coord2(8,6)", op: "/", rhs: "2"}
type batchFile struct {
	Type string    `yaml:"type"`
	Ops  []batchOp `yaml:"ops"`
}

type batchOp struct {
	LHS string `yaml:"lhs"`
	Op  string `yaml:"op"`
	RHS string `yaml:"rhs"`
}

var batchCmd = &cobra.Command{
	Use:   "batch <file.yaml>",
	Short: "Evaluate a YAML file of coordinate operations",
	Long: `Evaluate every operation listed in a YAML batch file, in order.

The file's "type" field selects the element type; when empty, --type is used.
Evaluation stops at the first failing operation.`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("batch: %w", err)
	}
	bf, err := parseBatch(data)
	if err != nil {
		return fmt.Errorf("batch %s: %w", args[0], err)
	}

	typ := bf.Type
	if typ == "" {
		typ = elemType
	}
	c, err := newCalculator(typ)
	if err != nil {
		return fmt.Errorf("batch %s: %w", args[0], err)
	}
	if verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "batch: %s type=%s ops=%d\n", args[0], typ, len(bf.Ops))
	}

	s := newStyles(!color.NoColor)
	out := cmd.OutOrStdout()
	for i, op := range bf.Ops {
		res, err := c.Eval(op.LHS, op.Op, op.RHS)
		if err != nil {
			return fmt.Errorf("batch %s: op %d: %w", args[0], i+1, err)
		}
		fmt.Fprintf(out, "%s %s %s = %s\n",
			s.operand.Sprint(op.LHS), s.op.Sprint(op.Op), s.operand.Sprint(op.RHS), s.result.Sprint(res))
	}
	return nil
}

// parseBatch decodes and checks a batch document.
func parseBatch(data []byte) (*batchFile, error) {
	var bf batchFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, err
	}
	if len(bf.Ops) == 0 {
		return nil, errEmptyBatch
	}
	return &bf, nil
}
