package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// Collection identifiers accepted by the get command. They match the wire
// names of the snapshot fields.
var Collections = []string{
	"cursos",
	"especialistas",
	"calendario",
	"habilidades",
	"evaluaciones",
	"documentacion",
	"pte",
}

// CollectionOptions
type CollectionOptions struct {
	Collection string
	All        bool
}

func AddCollectionArgs(cmd *cobra.Command, co *CollectionOptions) {
	cmd.Flags().BoolVar(&co.All, "all", false,
		"Print every collection.")
}

// Validate checks the collection name against the known set.
func Validate(name string) error {
	for _, c := range Collections {
		if c == name {
			return nil
		}
	}
	return fmt.Errorf("unknown collection %q, expected one of: %s", name, strings.Join(Collections, ", "))
}
