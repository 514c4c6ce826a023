// FILE: lixenwraith/bind/cmd/bindcheck/main.go
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/lixenwraith/bind"
)

var verbose bool

// rootCmd is the base command for bindcheck.
var rootCmd = &cobra.Command{
	Use:   "bindcheck",
	Short: "Inspect and exercise binding tables",
	Long: `bindcheck validates binding tables (TOML, YAML or JSON) and runs a headless
demonstration of a settings page wired through the binding engine.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// validateCmd parses a binding table and lists its rows.
var validateCmd = &cobra.Command{
	Use:   "validate <schema>",
	Short: "Validate a binding table and print its rows",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		defer log.Sync() //nolint:errcheck

		class, _ := cmd.Flags().GetString("class")

		s, err := bind.LoadSchemaFile(args[0])
		if err != nil {
			log.Error("Schema rejected", zap.String("path", args[0]), zap.Error(err))
			return err
		}
		if class != "" {
			s = s.ForClass(class)
		}
		log.Debug("Schema loaded", zap.String("path", args[0]), zap.Int("rows", len(s.Properties)))

		printSchema(cmd, s)
		return nil
	},
}

func printSchema(cmd *cobra.Command, s *bind.Schema) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CLASS\tKEY\tTYPE\tACCESSORS\tFLAGS\tDEFAULT")
	for _, d := range s.Properties {
		def := "-"
		if d.Default != nil {
			def = fmt.Sprint(d.Default)
		}
		accessors := d.Get
		if d.Set != "" {
			accessors += "/" + d.Set
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n", d.Class, d.Path(), d.Type, accessors, d.Flags, def)
	}
	w.Flush()
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	log, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	validateCmd.Flags().String("class", "", "only list rows of this configuration class")
	rootCmd.AddCommand(validateCmd, demoCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
