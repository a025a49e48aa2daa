package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var initForceFlag bool

func newInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write hardlit.yaml with the current settings",
		Long: `Write hardlit.yaml to the working directory with the whitelist, rule severity,
path filters and logging settings currently in effect. Edit the whitelist groups
(exact, suffix, prefix) to permit project-specific calls such as L10n wrappers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			target := filepath.Join(configFolderPath, configFileName)

			write := viper.SafeWriteConfigAs
			if initForceFlag {
				write = viper.WriteConfigAs
			}

			if err := write(target); err != nil {
				return fmt.Errorf("write %s: %w", target, err)
			}

			cmd.Printf("wrote %s\n", target)

			return nil
		},
	}

	cmd.Flags().BoolVarP(&initForceFlag, "force", "f", false, "overwrite an existing hardlit.yaml")

	return cmd
}

var initCmd = newInitCmd()

func init() {
	rootCmd.AddCommand(initCmd)
}
