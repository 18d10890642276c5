// Package cli implements the collectiontypes command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/collectiontypes/internal/paths"
	"github.com/mesh-intelligence/collectiontypes/pkg/catalog"
	"github.com/mesh-intelligence/collectiontypes/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the process exit code for an error returned by a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps an error returned by Execute to a process exit code.
// Errors that were not classified are treated as usage errors, which is what
// cobra returns for bad flags and argument counts.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	output    string
}

// app is the state shared by one command tree.
type app struct {
	flags   rootFlags
	config  types.Config
	log     *logrus.Logger
	catalog *catalog.Catalog
}

// NewRootCmd creates the top-level "collectiontypes" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{
		config:  types.DefaultConfig(),
		log:     logrus.New(),
		catalog: catalog.Default(),
	}

	root := &cobra.Command{
		Use:     "collectiontypes",
		Short:   "Collection type hierarchies for sequencing platforms",
		Long:    "collectiontypes prints, validates, and exports the ordered collection type\nhierarchy used to classify data from each sequencing platform.",
		Version: Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "export directory (default: $(CWD)/.collectiontypes)")
	root.PersistentFlags().StringVarP(&a.flags.output, "output", "o", "", "output format: text, json, or yaml")

	root.AddCommand(newVersionCmd())
	root.AddCommand(a.newLabelsCmd())
	root.AddCommand(a.newPlatformsCmd())
	root.AddCommand(a.newShowCmd())
	root.AddCommand(a.newListCmd())
	root.AddCommand(a.newValidateCmd())
	root.AddCommand(a.newExportCmd())
	root.AddCommand(a.newVerifyCmd())

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	os.Exit(run(NewRootCmd(), os.Args[1:], os.Stderr))
}

// run executes root with args, reports any error on stderr, and returns the
// exit code.
func run(root *cobra.Command, args []string, stderr io.Writer) int {
	root.SetArgs(args)
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
	}
	return exitCode(err)
}

// setup loads configuration and the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}

	cfg, err := loadConfig(configDir)
	if err != nil {
		return sysError(err)
	}
	if a.flags.output != "" {
		cfg.Output = a.flags.output
	}
	if err := cfg.Validate(); err != nil {
		return userError(fmt.Errorf("%w: output=%q log_format=%q", err, cfg.Output, cfg.LogFormat))
	}
	a.config = cfg

	log, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return userError(err)
	}
	a.log = log
	a.log.WithField("config_dir", configDir).Debug("configuration loaded")
	return nil
}

// resolveDataDir returns the export directory:
// --data-dir flag > config.yaml data_dir > COLLECTIONTYPES_DATA_DIR > default.
func (a *app) resolveDataDir() (string, error) {
	return paths.ResolveDataDir(a.flags.dataDir, a.config.DataDir)
}
