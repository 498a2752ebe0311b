package commands

import (
	"github.com/spf13/cobra"

	"tablero.dev/tablero/pkg/runner/tui"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the dashboard",
		Example: `
tablero ui
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return tui.Run(svc)
		},
	}

	topLevel.AddCommand(cmd)
}
