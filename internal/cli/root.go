// Package cli implements the pqueue command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pic32/Priority-Queue/internal/config"
)

var version = "dev"

// SetVersion sets the build version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
}

// NewRootCmd builds the pqueue command tree. Each call gets its own viper
// instance so commands can be constructed independently in tests.
func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:           "pqueue",
		Short:         "Drain tasks through a linked-list priority queue",
		Long:          `pqueue reads a YAML list of tasks, queues them by priority and prints them in the order they leave the queue.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ./.pqueue.yaml if present)")
	flags.String("order", config.OrderAsc, "drain order: asc or desc")
	flags.Bool("safe-mode", true, "report invalid queue use as errors")
	flags.Uint64("max-bytes", 0, "storage budget for the queue in bytes (0 for unlimited)")
	flags.StringP("output", "o", config.OutputText, "output format: text, yaml or json")
	flags.String("log-level", "warn", "log level: debug, info, warn or error")
	flags.Bool("stats", false, "print queue metrics to stderr after draining")

	// Bind flags to viper
	_ = v.BindPFlag("order", flags.Lookup("order"))
	_ = v.BindPFlag("safe_mode", flags.Lookup("safe-mode"))
	_ = v.BindPFlag("max_bytes", flags.Lookup("max-bytes"))
	_ = v.BindPFlag("output", flags.Lookup("output"))
	_ = v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = v.BindPFlag("stats", flags.Lookup("stats"))

	rootCmd.AddCommand(newDrainCmd(v))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func initConfig(v *viper.Viper, cfgFile string) error {
	config.SetDefaults(v)

	v.SetEnvPrefix("pqueue")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
		}
		return nil
	}

	v.AddConfigPath(".")
	v.SetConfigName(".pqueue")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// Execute runs the root command with the given arguments and streams.
func Execute(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}
