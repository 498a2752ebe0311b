package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tablero.dev/tablero/pkg/commands/options"
	"tablero.dev/tablero/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	co := &options.CollectionOptions{}
	jsonOut := false

	cmd := &cobra.Command{
		Use:   "get [collection]",
		Short: "fetch and print catalogs",
		Example: `
tablero get
tablero get cursos
tablero get calendario --json
`,
		ValidArgs: options.Collections,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return nil
			}
			if len(args) > 1 {
				return errors.New("too many collections set, confused")
			}
			co.Collection = args[0]
			return options.Validate(co.Collection)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService()
			if err != nil {
				return oo.HandleError(err)
			}
			g := get.Get{
				Collection: co.Collection,
				JSON:       jsonOut,
				Service:    svc,
			}
			return oo.HandleError(g.Do(context.Background()))
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Output as JSON.")
	options.AddCollectionArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
