package main

import (
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool

	log = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
		w.Out = os.Stderr
		w.TimeFormat = "15:04:05.000"
	})).With().Timestamp().Logger()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "mt19937",
	Short: "MT19937 Mersenne Twister output and checks.",
	Long: `MT19937 Mersenne Twister output and checks.
Every flag can also be set from the environment (MT19937_SEED, MT19937_COUNT, ...)
or from a config file. For example:
  mt19937 draw --seed=5489 --count=5
  mt19937 draw --keys=0x123,0x234,0x345,0x456 --format=halfopen
  mt19937 check --seed=1 --seeds=16 --variant=res53`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		} else {
			zerolog.SetGlobalLevel(zerolog.InfoLevel)
		}
		if err := initConfig(); err != nil {
			return err
		}
		return viper.BindPFlags(cmd.Flags())
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.mt19937.yaml)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "verbose logging")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return err
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".mt19937")
	}

	viper.SetEnvPrefix("MT19937")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
		log.Debug().Err(err).Msg("no config file")
		return nil
	}
	log.Debug().Str("file", viper.ConfigFileUsed()).Msg("using config file")
	return nil
}
