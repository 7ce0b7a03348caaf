package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/orchestrators/dice"
	"github.com/CraneCD/dnd-55e-character-sheet/internal/services/character"
)

func (c *cli) rollCmd() *cobra.Command {
	var (
		method string
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "roll [character.json]",
		Short: "Roll new ability scores for a character",
		Long: fmt.Sprintf(`Roll replaces all six ability scores with freshly rolled ones and shows the dice.

Methods: %s

  Example: sheet roll vex.json --method 3d6 --out vex.json`, strings.Join(dice.Methods(), ", ")),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			svc := c.app.service

			path := ""
			if len(args) == 1 {
				path = args[0]
			}

			state, err := loadCharacter(ctx, cmd, svc, path)
			if err != nil {
				return err
			}

			rolled, err := svc.ApplyRolledScores(ctx, &character.ApplyRolledScoresInput{
				Character: state,
				Method:    method,
			})
			if err != nil {
				return err
			}

			if format == formatTable {
				renderRolls(cmd.OutOrStdout(), rolled.Rolls)
			}
			return emit(ctx, cmd, svc, rolled.Character, format, out)
		},
	}

	cmd.Flags().StringVarP(&method, "method", "m", dice.MethodStandard, "Rolling method")
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table or json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the exported character to this file (- for stdout)")

	return cmd
}
