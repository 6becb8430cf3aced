package cli

import (
	"github.com/spf13/cobra"

	"github.com/ayusman/mudra/internal/gesture"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List gesture config presets",
	Long:  `Prints every known preset name with its full threshold configuration.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := make(map[string]gesture.Config)
		for _, name := range gesture.PresetNames() {
			cfg, _ := gesture.ConfigForPreset(name)
			out[name] = cfg
		}
		printJSON(out)
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
