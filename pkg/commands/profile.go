package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tablero.dev/tablero/pkg/commands/options"
	"tablero.dev/tablero/pkg/runner/profileedit"
)

func addProfile(topLevel *cobra.Command) {
	po := &options.ProfileOptions{}

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "show or update the stored user profile",
		Example: `
tablero profile
tablero profile --name "Ana" --area "Calidad"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			p := profileedit.ProfileEdit{
				Name:    po.Name,
				Email:   po.Email,
				Area:    po.Area,
				Service: svc,
			}
			return oo.HandleError(p.Do(context.Background()))
		},
	}
	options.AddProfileArgs(cmd, po)

	topLevel.AddCommand(cmd)
}
