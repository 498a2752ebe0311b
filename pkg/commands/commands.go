package commands

import (
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tablero.dev/tablero/pkg/app"
	"tablero.dev/tablero/pkg/config"
	"tablero.dev/tablero/pkg/gateway"
	"tablero.dev/tablero/pkg/profile"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "tablero",
		Short: base.Wrap80("Training catalog dashboard on the command line."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addUI(topLevel)
	addGet(topLevel)
	addProfile(topLevel)
	addVersion(topLevel)
}

// newService assembles the shared service from configuration.
func newService() (*app.Service, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	svc := app.New(gateway.New(cfg.URL), profile.NewStore(cfg.Path))
	return svc, nil
}
