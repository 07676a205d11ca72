package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vfit-app/vfit/internal/gymstats/calories"
)

func NewCategoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List workout categories and their calorie rates",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, c := range calories.Categories() {
				rate, err := c.Rate()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-12s %s\n", c, color.CyanString("%g kcal/min", rate))
			}
			return nil
		},
	}
}
