package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

type CategoriesCmd struct{}

func NewCategoriesCmd() *cobra.Command {
	cc := &CategoriesCmd{}
	return &cobra.Command{
		Use:   "categories",
		Short: "List configured alert categories in report order",
		RunE:  cc.run,
	}
}

func (cc *CategoriesCmd) run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	if len(cfg.Categories) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No categories configured")
		return nil
	}

	for _, c := range cfg.Categories {
		fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.Name, c.ID)
	}
	return nil
}
