// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// calc.go - One-shot evaluation.
//
// Usage:
//   bmi calc --height 170 --weight 65
//   bmi calc 170 65 [--json]
//
// Exit code 1 when the measurement is invalid.

package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jeranaias/bmi-tui/internal/bmi"
)

// CalcData is the --json payload of the calc command.
type CalcData struct {
	Height string `json:"height"`
	Weight string `json:"weight"`
	bmi.Outcome
}

func newCalcCommand(st *state) *cobra.Command {
	var (
		height string
		weight string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "calc [height weight]",
		Short: "Evaluate one height/weight pair",
		Long: `Evaluate a height in centimetres and a weight in kilograms.

Values are read the same way the form reads them: the leading number is
used and any trailing unit is ignored, so "170cm" and "65.5kg" work.`,
		Example: `  bmi calc --height 170 --weight 65
  bmi calc 170 65 --json`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			usedFlags := cmd.Flags().Changed("height") || cmd.Flags().Changed("weight")
			switch {
			case len(args) == 2 && usedFlags:
				return NewValidationErrorWithExample("arguments", "",
					"give height and weight either as flags or as arguments", "bmi calc 170 65")
			case len(args) == 2:
				height, weight = args[0], args[1]
			case len(args) == 1:
				return NewValidationErrorWithExample("arguments", args[0],
					"weight missing", "bmi calc 170 65")
			}

			out, err := bmi.Evaluate(height, weight)
			if err != nil {
				st.logger.Info("invalid measurement submitted", zap.String("command", "calc"))
				cmdErr := NewCommandError("calc", "evaluate", bmi.InvalidMeasurementMessage, err)
				if asJSON {
					if werr := NewJSONErrorResponse("calc", cmdErr).Write(cmd.OutOrStdout()); werr != nil {
						return werr
					}
					return &reportedError{err: cmdErr}
				}
				return cmdErr
			}

			st.logger.Debug("bmi evaluated",
				zap.String("command", "calc"),
				zap.Float64("bmi", out.BMI),
				zap.Stringer("status", out.Status),
			)

			w := cmd.OutOrStdout()
			if asJSON {
				return NewJSONResponse("calc", CalcData{Height: height, Weight: weight, Outcome: out}).Write(w)
			}
			printOutcome(w, out)
			return nil
		},
	}

	cmd.Flags().StringVar(&height, "height", "", "Height in centimetres")
	cmd.Flags().StringVar(&weight, "weight", "", "Weight in kilograms")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output in JSON format")
	return cmd
}
