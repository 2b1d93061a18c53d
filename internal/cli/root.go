package cli

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/2beens/gymroutines/internal/config"
)

func NewRootCmd(version string) *cobra.Command {
	var (
		env        string
		configPath string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:          "gymctl",
		Short:        "gymctl manages workout routines and runs guided workouts",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(cmd.ErrOrStderr())
			log.SetLevel(log.WarnLevel)
			if verbose {
				log.SetLevel(log.DebugLevel)
			}

			cfg, err := config.Load(env, configPath)
			if err != nil {
				return err
			}
			cmd.SetContext(withConfig(cmd.Context(), cfg))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&env, "env", "development", "environment [prod | production | dev | development]")
	cmd.PersistentFlags().StringVar(&configPath, "config", "./config.toml", "path for the TOML config file")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging on stderr")

	cmd.AddCommand(newRoutinesCmd())
	cmd.AddCommand(newLogsCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newWorkoutCmd())

	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	cmd.SetVersionTemplate("{{.Version}}\n")
	if version != "" {
		cmd.Version = version
	} else {
		cmd.Version = "dev"
	}

	return cmd
}
