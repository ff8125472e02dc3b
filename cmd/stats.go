package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/campusbase/registrar/internal/graph"
)

var statsJSON bool

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show dashboard counts for the seeded registry",
	Long: `Show the dashboard counts (students, professors, courses, enrollments)
for the in-memory registry. Pair with --seed to count fixture data.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver := &graph.Resolver{Registry: reg, Events: events}
		stats, err := resolver.Query().DashboardStats(context.Background())
		if err != nil {
			return err
		}

		if statsJSON {
			data, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(data))
			return nil
		}

		fmt.Printf("Students:    %d\n", stats.Students)
		fmt.Printf("Professors:  %d\n", stats.Professors)
		fmt.Printf("Courses:     %d\n", stats.Courses)
		fmt.Printf("Enrollments: %d\n", stats.Enrollments)
		return nil
	},
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(statsCmd)
}
