package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/rush/internal/catalog"
)

// MenuCmd returns the menu command
func MenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Print the menu, recipes, and grocery prices",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(color.New(color.Bold).Sprint("Menu"))
			for _, dish := range catalog.Dishes() {
				fmt.Printf("  %s (%s) - %d coins\n",
					dish.Name, dish.ID, dish.Price)
				recipe, ok := catalog.RecipeFor(dish.ID)
				if !ok {
					continue
				}
				if len(recipe.Steps) == 0 {
					fmt.Println("      served straight from stock")
				}
				for _, step := range recipe.Steps {
					fmt.Printf("      %s -> %s at the %s (%s, %ds)\n",
						step.Input, step.Output, step.Zone, step.Interaction, step.DurationMs/1000)
				}
				for _, garnish := range recipe.Garnish {
					fmt.Printf("      + %s at assembly\n", garnish)
				}
			}

			fmt.Println()
			fmt.Println(color.New(color.Bold).Sprint("Groceries"))
			for _, item := range catalog.Items() {
				fmt.Printf("  %s (%s) - %d coins, keeps %ds\n",
					item.Name, item.ID, item.Cost, item.ShelfLifeMs/1000)
			}
			return nil
		},
	}
}
