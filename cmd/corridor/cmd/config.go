package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// buildSettings mirrors corridor.Config with yaml tags, matching the
// teacher's pattern of keeping the YAML-facing struct separate from the
// core library's Config (cmd/recast/cmd/config.go does the analogous
// thing for recast.Config).
type buildSettings struct {
	Width    int32  `yaml:"width"`
	Length   int32  `yaml:"length"`
	Height   int32  `yaml:"height"`
	Seed     uint32 `yaml:"seed"`
	Fullness int32  `yaml:"fullness"`
}

var defaultBuildSettings = buildSettings{
	Width:    64,
	Length:   64,
	Height:   3,
	Seed:     1,
	Fullness: 60,
}

// configCmd represents the config command.
var configCmd = &cobra.Command{
	Use:   "config FILE",
	Short: "create a build settings file",
	Long: `Create a build settings file in YAML format, prefilled with default
values.

If FILE is not provided, 'corridor.yml' is used.`,
	Run: func(cmd *cobra.Command, args []string) {
		path := "corridor.yml"
		if len(args) >= 1 {
			path = args[0]
		}
		ok, err := confirmIfExists(path, fmt.Sprintf("file name %s already exists, overwrite? [y/N]", path))
		if !ok {
			if err == nil {
				fmt.Println("aborted by user")
			} else {
				fmt.Println("aborted,", err)
			}
			return
		}
		check(marshalYAMLFile(path, defaultBuildSettings))
		fmt.Printf("build settings written to '%s'\n", path)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
}
