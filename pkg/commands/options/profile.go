package options

import (
	"github.com/spf13/cobra"
)

// ProfileOptions
type ProfileOptions struct {
	Name  string
	Email string
	Area  string
}

func AddProfileArgs(cmd *cobra.Command, po *ProfileOptions) {
	cmd.Flags().StringVar(&po.Name, "name", "",
		"Profile name. Empty keeps the stored value.")
	cmd.Flags().StringVar(&po.Email, "email", "",
		"Profile email. Empty keeps the stored value.")
	cmd.Flags().StringVar(&po.Area, "area", "",
		"Profile area. Empty keeps the stored value.")
}
