package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/services/character"
)

func (c *cli) saveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "save <character.json>",
		Short: "Save a character file to the store under its name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireStore(ctx); err != nil {
				return err
			}
			svc := c.app.service

			state, err := loadCharacter(ctx, cmd, svc, args[0])
			if err != nil {
				return err
			}

			saved, err := svc.Save(ctx, &character.SaveInput{Character: state})
			if err != nil {
				return err
			}

			verb := "updated"
			if saved.Created {
				verb = "saved"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s (%s)\n", verb, saved.Name, saved.ID)
			return nil
		},
	}
}

func (c *cli) loadCmd() *cobra.Command {
	var (
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "load <name>",
		Short: "Load a saved character and show its sheet",
		Long: `Load restores a saved character, recomputes everything derived and prints it.

  Example: sheet load Vex --out vex.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireStore(ctx); err != nil {
				return err
			}
			svc := c.app.service

			loaded, err := svc.Load(ctx, &character.LoadInput{Name: args[0]})
			if err != nil {
				return err
			}
			return emit(ctx, cmd, svc, loaded.Character, format, out)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "Output format: table or json")
	cmd.Flags().StringVarP(&out, "out", "o", "", "Write the exported character to this file (- for stdout)")

	return cmd
}

func (c *cli) listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved characters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := c.requireStore(ctx); err != nil {
				return err
			}

			listed, err := c.app.service.List(ctx, &character.ListInput{})
			if err != nil {
				return err
			}
			renderSummaries(cmd.OutOrStdout(), listed.Characters)
			return nil
		},
	}
}

func (c *cli) deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := c.requireStore(ctx); err != nil {
				return err
			}

			if _, err := c.app.service.Delete(ctx, &character.DeleteInput{Name: args[0]}); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
			return nil
		},
	}
}

func (c *cli) doctorCmd() *cobra.Command {
	var repair bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the character store for damaged records",
		Long: `Doctor scans every saved character and the name index. It reports records that
cannot be decoded, records missing from the index and index entries without a record.

  Example: sheet doctor --repair`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := c.requireStore(ctx); err != nil {
				return err
			}

			checked, err := c.app.service.CheckStore(ctx, &character.CheckStoreInput{Repair: repair})
			if err != nil {
				return err
			}
			renderCheck(cmd.OutOrStdout(), checked)
			return nil
		},
	}

	cmd.Flags().BoolVar(&repair, "repair", false, "Delete undecodable records and fix the name index")

	return cmd
}
