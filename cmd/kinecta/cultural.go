package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kinecta/kinecta/pkg/cultural"
)

func newCulturalCommand() *cobra.Command {
	var (
		query    string
		heritage string
	)

	cmd := &cobra.Command{
		Use:   "cultural",
		Short: "Browse the cultural reference catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := cultural.LoadCatalog()
			if err != nil {
				return err
			}

			if query != "" {
				catalog = catalog.Search(query)
			}

			sayings := catalog.Sayings
			if heritage != "" {
				sayings = catalog.SayingsForHeritage(heritage)
			}

			if len(sayings) > 0 {
				fmt.Println("Sayings:")
				for _, s := range sayings {
					fmt.Printf("  %s (%s) — %s [%s]\n", s.Chinese, s.Pinyin, s.English, s.Heritage)
				}
			}
			if heritage == "" {
				if len(catalog.Periods) > 0 {
					fmt.Println("Historical periods:")
					for _, p := range catalog.Periods {
						fmt.Printf("  %s (%d-%d)\n", p.Name, p.StartYear, p.EndYear)
					}
				}
				if len(catalog.Occupations) > 0 {
					fmt.Println("Traditional occupations:")
					for _, o := range catalog.Occupations {
						fmt.Printf("  %s — %s\n", o.Name, o.Description)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&query, "query", "", "free-text filter")
	cmd.Flags().StringVar(&heritage, "heritage", "", "only show sayings for this heritage")

	return cmd
}
