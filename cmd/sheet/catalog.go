package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CraneCD/dnd-55e-character-sheet/internal/services/character"
)

func (c *cli) catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Browse reference data, homebrew included",
	}

	for _, kind := range character.CatalogKinds() {
		cmd.AddCommand(&cobra.Command{
			Use:   kind,
			Short: fmt.Sprintf("List the available %s", kind),
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				listed, err := c.app.service.ListCatalog(cmd.Context(), &character.ListCatalogInput{Kind: kind})
				if err != nil {
					return err
				}
				renderReferenceItems(cmd.OutOrStdout(), listed.Items, listed.Unavailable)
				return nil
			},
		})
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "class <class>",
		Short: "Show a class with its hit die, saves and subclasses",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := c.app.service.GetClassDetail(cmd.Context(), &character.GetClassDetailInput{ClassID: args[0]})
			if err != nil {
				return err
			}
			renderClassDetail(cmd.OutOrStdout(), detail.Class)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "feature <feature>",
		Short: "Show a class or subclass feature",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := c.app.service.GetFeatureDetail(cmd.Context(), &character.GetFeatureDetailInput{FeatureID: args[0]})
			if err != nil {
				return err
			}
			renderFeatureDetail(cmd.OutOrStdout(), detail.Feature, detail.Homebrew)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "spell <spell>",
		Short: "Preview a spell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			detail, err := c.app.service.GetSpellDetail(cmd.Context(), &character.GetSpellDetailInput{SpellID: args[0]})
			if err != nil {
				return err
			}
			renderSpellDetail(cmd.OutOrStdout(), detail.Spell, detail.Homebrew)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "subclasses <class>",
		Short: "List the subclasses of a class, homebrew included",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			listed, err := c.app.service.ListSubclasses(cmd.Context(), &character.ListSubclassesInput{ClassID: args[0]})
			if err != nil {
				return err
			}
			renderReferenceItems(cmd.OutOrStdout(), listed.Subclasses, listed.Unavailable)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "spells <class> [subclass]",
		Short: "List the spell options of a class and subclass, homebrew included",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := &character.ListSpellOptionsInput{ClassID: args[0]}
			if len(args) == 2 {
				input.SubclassID = args[1]
			}

			listed, err := c.app.service.ListSpellOptions(cmd.Context(), input)
			if err != nil {
				return err
			}
			renderReferenceItems(cmd.OutOrStdout(), listed.Spells, listed.Unavailable)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "armor",
		Short: "Show the armor table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			renderArmorCatalog(cmd.OutOrStdout())
			return nil
		},
	})

	return cmd
}
