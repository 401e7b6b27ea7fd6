// Package cli implements the cobra-based CLI for devlaunch.
//
// The root command carries the launcher behavior itself: one optional
// positional argument selects a service directly, no argument enters
// the interactive menu. The supporting subcommands (status, doctor) are
// defined in their own files within this package.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mmizuno/devlaunch/internal/config"
	"github.com/mmizuno/devlaunch/internal/launcher"
	"github.com/mmizuno/devlaunch/internal/model"
	"github.com/mmizuno/devlaunch/internal/project"
)

// Global flag variables shared across all subcommands.
// These are bound to cobra persistent flags on the root command,
// which makes them available to every subcommand automatically.
var (
	// jsonOutput controls whether command output is formatted as JSON.
	// When true, all output uses structured JSON format for machine
	// consumption. When false (default), output is human-readable text.
	jsonOutput bool

	// verbose enables detailed logging output for debugging.
	// When true, additional information about operations is printed to stderr.
	verbose bool

	// flagRoot overrides the project root. When empty, the DEVLAUNCH_ROOT
	// environment variable is consulted, then the directory containing
	// the devlaunch executable.
	flagRoot string

	// flagConfig names an explicit config file, bypassing discovery
	// under the project root.
	flagConfig string
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main package to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// NewRootCommand creates and configures the root cobra command.
// This is the entry point for the entire CLI application.
//
// Unlike a pure command multiplexer, the root command does real work:
// it is the launcher. `devlaunch backend` (alias `server`) and
// `devlaunch frontend` dispatch directly; bare `devlaunch` runs the
// interactive menu. Anything else is a usage error.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "devlaunch [backend|frontend]",
		Short: "Launch the backend or frontend dev server",
		Long: `devlaunch starts one of the project's two local dev servers and replaces
itself with it: the backend (after activating its virtualenv) or the
frontend. With no argument it presents an interactive menu.

The project root defaults to the directory containing the devlaunch
binary; override it with --root or DEVLAUNCH_ROOT. Service directories,
start commands and ports can be adjusted in .devlaunch.yaml (or .json)
at the project root.`,

		// SilenceUsage prevents cobra from printing usage on every error.
		// We handle error output ourselves for cleaner UX.
		SilenceUsage: true,

		// SilenceErrors prevents cobra from printing errors automatically.
		// We format errors ourselves (text or JSON based on --json flag).
		SilenceErrors: true,

		// Version is displayed when --version flag is used.
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date),

		// At most one positional argument: the service to launch.
		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(args)
		},
	}

	// PersistentFlags are inherited by all subcommands. This is the cobra
	// mechanism for global flags — any flag defined here is automatically
	// available in every subcommand without re-declaration.
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&flagRoot, "root", "", "Project root (default: directory of the devlaunch binary)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: discovered at the project root)")

	// Register subcommands. Each subcommand is defined in its own file
	// (status.go, doctor.go) and returns a *cobra.Command.
	rootCmd.AddCommand(NewStatusCommand())
	rootCmd.AddCommand(NewDoctorCommand())

	return rootCmd
}

// runRoot dispatches on the optional positional argument.
//
// The argument is parsed before anything else runs: an unrecognized
// value must terminate with a usage error and no side effects, not
// after config loading has already happened.
func runRoot(args []string) error {
	var target model.ServiceTarget
	haveTarget := false

	if len(args) == 1 {
		parsed, err := model.ParseServiceTarget(args[0])
		if err != nil {
			return model.NewCLIError(model.ExitGeneralError, err.Error())
		}
		target = parsed
		haveTarget = true
	}

	proj, cfg, err := loadProjectContext()
	if err != nil {
		return err
	}

	l := launcher.New(proj, cfg)

	if haveTarget {
		VerboseLog("Launching %s directly", target)
		return l.Launch(target)
	}

	// Interactive mode. The menu reads wherever stdin points — a pipe
	// works just as well as a terminal, it only loses the note below.
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		VerboseLog("stdin is not a terminal; reading menu selections from the input stream")
	}
	return runMenu(os.Stdin, os.Stdout, l.Launch)
}

// loadProjectContext resolves the project root, loads the launch
// configuration, and derives the project paths. Shared by the root
// dispatch and the status/doctor subcommands.
func loadProjectContext() (*project.Project, *config.Config, error) {
	root := flagRoot
	if root == "" {
		root = os.Getenv("DEVLAUNCH_ROOT")
	}
	if root == "" {
		defaultRoot, err := project.DefaultRoot()
		if err != nil {
			return nil, nil, model.WrapCLIError(model.ExitGeneralError,
				"cannot determine project root", err)
		}
		root = defaultRoot
	}
	VerboseLog("Project root: %s", root)

	cfg, err := config.Load(root, flagConfig)
	if err != nil {
		return nil, nil, err
	}
	if path, ok := config.FindConfigFile(root); ok && flagConfig == "" {
		VerboseLog("Using config file: %s", path)
	}

	proj, err := project.Resolve(root, cfg)
	if err != nil {
		return nil, nil, model.WrapCLIError(model.ExitGeneralError,
			"cannot resolve project paths", err)
	}
	VerboseLog("Backend dir: %s", proj.BackendDir)
	VerboseLog("Frontend dir: %s", proj.FrontendDir)

	return proj, cfg, nil
}

// Execute runs the root command and handles exit codes.
// This is the main entry point called from main.go.
//
// It inspects errors returned by cobra commands and translates them
// into appropriate OS exit codes. CLIError types carry their own
// exit codes; other errors default to exit code 1.
func Execute(rootCmd *cobra.Command) {
	if err := rootCmd.Execute(); err != nil {
		// Check if the error is a CLIError with a specific exit code.
		// errors.As would also work here, but a type assertion is simpler
		// for this single-level check.
		if cliErr, ok := err.(*model.CLIError); ok {
			printError(cliErr.Message, cliErr.Err)
			os.Exit(int(cliErr.Code))
		}

		// Generic error — exit with code 1.
		printError(err.Error(), nil)
		os.Exit(int(model.ExitGeneralError))
	}
}

// printError outputs an error message in the appropriate format
// (JSON or text) based on the --json global flag.
func printError(message string, underlying error) {
	if jsonOutput {
		errObj := map[string]interface{}{
			"error": map[string]interface{}{
				"message": message,
			},
		}
		if underlying != nil {
			if errMap, ok := errObj["error"].(map[string]interface{}); ok {
				errMap["detail"] = underlying.Error()
			}
		}
		// Errors go to stderr even in JSON mode, because stdout is
		// reserved for successful command output.
		data, _ := json.MarshalIndent(errObj, "", "  ")
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		// Text format: "Error: <message>" on stderr.
		if underlying != nil {
			fmt.Fprintf(os.Stderr, "Error: %s: %v\n", message, underlying)
		} else {
			fmt.Fprintf(os.Stderr, "Error: %s\n", message)
		}
	}
}

// VerboseLog prints a message to stderr only when verbose mode is enabled.
// This is used throughout the CLI for debug/trace output that helps
// users understand what operations are being performed.
func VerboseLog(format string, args ...interface{}) {
	if verbose {
		fmt.Fprintf(os.Stderr, "[verbose] "+format+"\n", args...)
	}
}

// IsJSONOutput returns whether the --json flag is set.
// Subcommands use this to decide their output format.
func IsJSONOutput() bool {
	return jsonOutput
}
