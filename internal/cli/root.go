package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-pagerender"
	"github.com/goliatone/go-pagerender/internal/config"
	"github.com/goliatone/go-pagerender/internal/debug"
)

// Version information, set by main from build-time variables.
var Version = "dev"

type rootOptions struct {
	configPath          string
	dir                 string
	template            string
	keepTrailingNewline bool
	autoescape          bool
	sanitize            string
	debug               bool
}

// NewRootCommand builds the pagerender command. Running it without flags
// renders src/html/index.html and prints the result.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pagerender",
		Short: "Render an HTML template and print it to stdout",
		Long: `pagerender loads a template from a directory, renders it with an empty
context and prints the result to stdout.

With no flags it renders src/html/index.html relative to the working
directory. Templates use Django/Jinja syntax ({% block %}, {% include %},
{% extends %}).`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, FlagConfig, "c", "", DescConfig)
	flags.StringVarP(&opts.dir, FlagDir, "d", config.DefaultDir, DescDir)
	flags.StringVarP(&opts.template, FlagTemplate, "t", config.DefaultTemplate, DescTemplate)
	flags.BoolVar(&opts.keepTrailingNewline, FlagKeepTrailingNewline, false, DescKeepTrailingNewline)
	flags.BoolVar(&opts.autoescape, FlagAutoescape, false, DescAutoescape)
	flags.StringVar(&opts.sanitize, FlagSanitize, config.DefaultSanitize, DescSanitize)
	flags.BoolVar(&opts.debug, FlagDebug, false, DescDebug)

	return cmd
}

// Run executes the command with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

// Execute runs the command against the process arguments and exits.
func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

func runRender(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := resolveConfig(cmd, opts)
	if err != nil {
		return err
	}

	debug.SetOutput(cmd.ErrOrStderr())
	debug.SetDebug(cfg.Debug)
	defer debug.SetDebug(false)

	if opts.configPath != "" {
		debug.DebugValue("config", opts.configPath)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	return pagerender.Print(
		cmd.OutOrStdout(),
		cfg.Dir,
		cfg.Template,
		pagerender.WithKeepTrailingNewline(cfg.KeepTrailingNewline),
		pagerender.WithAutoescape(cfg.Autoescape),
		pagerender.WithSanitizer(cfg.SanitizePolicy()),
	)
}

// resolveConfig layers explicitly set flags over the config file, which in
// turn overrides the defaults.
func resolveConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed(FlagDir) {
		cfg.Dir = opts.dir
	}
	if flags.Changed(FlagTemplate) {
		cfg.Template = opts.template
	}
	if flags.Changed(FlagKeepTrailingNewline) {
		cfg.KeepTrailingNewline = opts.keepTrailingNewline
	}
	if flags.Changed(FlagAutoescape) {
		cfg.Autoescape = opts.autoescape
	}
	if flags.Changed(FlagSanitize) {
		cfg.Sanitize = opts.sanitize
	}
	if flags.Changed(FlagDebug) {
		cfg.Debug = opts.debug
	}
	return cfg, nil
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
