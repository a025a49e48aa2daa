package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "(devel)"

// buildVersion returns the module version and the VCS revision it was built from, if any.
func buildVersion(info *debug.BuildInfo) (string, string) {
	version := info.Main.Version
	if version == "" {
		version = unknownVersion
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			return version, setting.Value
		}
	}

	return version, ""
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the hardlit build",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				cmd.Println("hardlit", unknownVersion)
				return
			}

			version, revision := buildVersion(info)
			if revision != "" {
				cmd.Printf("hardlit %s (%s) %s\n", version, revision, info.GoVersion)
				return
			}

			cmd.Printf("hardlit %s %s\n", version, info.GoVersion)
		},
	}
}

var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
