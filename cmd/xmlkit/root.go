package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/halden/xmlkit/internal/xlog"
	"github.com/halden/xmlkit/xml"
)

// cfgFile is the optional --config path; when empty, viper looks for
// $HOME/xmlkit.yaml, then ./xmlkit.yaml, per the Find*ConfigFile conventions
// used by opnDossier/opnFocus.
var cfgFile string

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "xmlkit",
		Short:         "A compact XML 1.0 toolkit: format, convert, query, and validate documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd)
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/xmlkit.yaml or ./xmlkit.yaml)")
	root.PersistentFlags().Int("tab-size", xml.DefaultTabSize(), "column width of a tab stop when reporting error positions")
	root.PersistentFlags().String("encoding", "utf8", "default encoding mode when no <?xml ... encoding=?> declaration is present (utf8|legacy)")
	root.PersistentFlags().Bool("condense-whitespace", xml.IsWhitespaceCondensed(), "collapse runs of whitespace in text nodes to a single space")
	root.PersistentFlags().String("log-level", "info", "log verbosity: debug, info, warn, error")

	_ = viper.BindPFlag("tab-size", root.PersistentFlags().Lookup("tab-size"))
	_ = viper.BindPFlag("encoding", root.PersistentFlags().Lookup("encoding"))
	_ = viper.BindPFlag("condense-whitespace", root.PersistentFlags().Lookup("condense-whitespace"))
	_ = viper.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(
		newFmtCmd(),
		newJSONCmd(),
		newCSVCmd(),
		newQueryCmd(),
		newValidateCmd(),
	)
	return root
}

// initConfig wires viper's precedence chain — flags > environment
// (XMLKIT_*) > config file > library defaults — per the teacher pack's
// config-layer convention (opnDossier/opnFocus load config the same way).
func initConfig(cmd *cobra.Command) error {
	viper.SetEnvPrefix("XMLKIT")
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName("xmlkit")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok && cfgFile != "" {
			return fmt.Errorf("reading config: %w", err)
		}
	}

	xlog.SetLevel(viper.GetString("log-level"))
	return nil
}

// parseOptions builds the xml.Option slice shared by every subcommand from
// viper's resolved configuration.
func parseOptions() []xml.Option {
	opts := []xml.Option{
		xml.WithTabSize(viper.GetInt("tab-size")),
		xml.WithCondenseWhitespace(viper.GetBool("condense-whitespace")),
	}
	if viper.GetString("encoding") == "legacy" {
		opts = append(opts, xml.WithDefaultEncoding(xml.EncodingLegacy))
	} else {
		opts = append(opts, xml.WithDefaultEncoding(xml.EncodingUTF8))
	}
	return opts
}

func readAndParse(path string) (*xml.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := xml.LoadFile(f, parseOptions()...)
	if err != nil {
		return nil, err
	}
	if doc.Error() != nil {
		return nil, doc.Error()
	}
	return doc, nil
}
