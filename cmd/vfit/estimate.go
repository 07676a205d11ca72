package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vfit-app/vfit/internal/gymstats/calories"
)

func NewEstimateCommand() *cobra.Command {
	var (
		duration float64
		category string
	)

	cmd := &cobra.Command{
		Use:   "estimate",
		Short: "Estimate calories burned in a workout",
		Long: `Estimate calories burned in a workout.

Calories are duration in minutes multiplied by the per-minute rate of the
category, rounded to the nearest integer. See 'vfit categories' for rates.`,
		Example: "  vfit estimate --duration 30 --category cardio",
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := calories.ParseCategory(category)
			if err != nil {
				return err
			}

			burned, err := calories.Estimate(duration, c)
			if err != nil {
				return err
			}

			logrus.WithFields(logrus.Fields{
				"duration": duration,
				"category": c,
				"calories": burned,
			}).Debug("estimated calories")

			fmt.Fprintf(cmd.OutOrStdout(), "%s min of %s: %s\n",
				formatMinutes(duration),
				c,
				color.New(color.Bold, color.FgGreen).Sprintf("%d kcal", burned),
			)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.Float64VarP(&duration, "duration", "d", 0, "workout duration in minutes")
	flags.StringVarP(&category, "category", "c", calories.CategoryCardio.String(), "workout category")
	_ = cmd.MarkFlagRequired("duration")

	return cmd
}

func formatMinutes(minutes float64) string {
	return fmt.Sprintf("%g", minutes)
}
