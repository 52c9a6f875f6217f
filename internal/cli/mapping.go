package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"txnconsumer/internal/config"
)

func NewMappingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mapping",
		Short: "Mapping file operations",
	}

	var file string
	check := &cobra.Command{
		Use:   "check",
		Short: "Load a mapping file and report configuration problems",
		RunE: func(c *cobra.Command, args []string) error {
			cfg, err := config.LoadMapping(file)
			if err != nil {
				return err
			}
			problems := config.CheckMapping(cfg)
			if len(problems) == 0 {
				fmt.Println("Mapping OK.")
				return nil
			}
			for _, p := range problems {
				fmt.Println(" -", p)
			}
			return fmt.Errorf("%d problem(s) found", len(problems))
		},
	}
	check.Flags().StringVarP(&file, "file", "f", "configs/mapping.yaml", "Path to mapping file")

	cmd.AddCommand(check)
	return cmd
}
