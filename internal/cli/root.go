package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool
)

// rootCmd represents the base command. Running the tool with no arguments
// performs a full sweep, so `msgsweep` alone is a complete invocation.
var rootCmd = &cobra.Command{
	Use:   "msgsweep",
	Short: "Msgsweep - unused localization message detector",
	Long: `Msgsweep verifies that every message identifier declared in a translation
catalog is actually referenced somewhere in the source tree.

Identifiers are classified three ways:
- used: the exact identifier appears as a quoted literal
- likely dynamic: the identifier is plausibly assembled at runtime from a
  fixed prefix, an interpolated segment, and a fixed suffix
- unused: no evidence found; a candidate for removal

The exit status is non-zero if and only if any identifier is unused.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          runCheck,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Display the version number and build information for Msgsweep.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("msgsweep v0.1.0")
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.msgsweep/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	// Bind flags to viper
	_ = viper.BindPFlag("output.verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.msgsweep")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match MSGSWEEP_*
	viper.SetEnvPrefix("MSGSWEEP")
	viper.AutomaticEnv()

	// If a config file is found, read it in
	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}
