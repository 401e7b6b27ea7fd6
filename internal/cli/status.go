// Package cli — status.go implements the "devlaunch status" command.
//
// The status command is read-only: it reports on each service without
// launching anything. A service is "running" when something accepts TCP
// connections on its configured dev port, "stopped" when its directory
// exists but nothing listens, and "missing" when the directory itself
// is absent.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/mmizuno/devlaunch/internal/model"
	"github.com/mmizuno/devlaunch/internal/port"
	"github.com/mmizuno/devlaunch/internal/project"
)

// probeHost is where dev servers are probed. Both servers bind the
// loopback-reachable interface in their default configuration.
const probeHost = "127.0.0.1"

// NewStatusCommand creates the "status" cobra command.
// It is called from NewRootCommand to register as a subcommand.
func NewStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether the dev servers are running",
		Long: `Show the state of the backend and frontend dev servers.

Each service is probed with a short TCP dial to its configured port on
localhost. Nothing is launched or stopped.

Examples:
  devlaunch status
  devlaunch status --json`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}

	return cmd
}

// runStatus probes both services and prints the result.
func runStatus() error {
	proj, cfg, err := loadProjectContext()
	if err != nil {
		return err
	}

	prober := port.NewProber()
	statuses := []model.ServiceStatus{
		serviceStatus("backend", proj.BackendDir, cfg.Backend.Port, prober),
		serviceStatus("frontend", proj.FrontendDir, cfg.Frontend.Port, prober),
	}

	printStatusResult(os.Stdout, statuses)
	return nil
}

// serviceStatus derives one service's observed state from its directory
// and dev port. The directory check comes first: probing the port of a
// service that is not even checked out would misreport an unrelated
// listener as "running".
func serviceStatus(name, dir string, devPort int, prober *port.Prober) model.ServiceStatus {
	state := model.StateStopped
	if !project.DirExists(dir) {
		state = model.StateMissing
	} else if prober.IsListening(probeHost, devPort) {
		state = model.StateRunning
	}

	return model.ServiceStatus{
		Name:  name,
		Dir:   dir,
		Port:  devPort,
		State: state,
	}
}

// printStatusResult outputs the status rows in text or JSON format,
// depending on the global --json flag.
func printStatusResult(w io.Writer, statuses []model.ServiceStatus) {
	if IsJSONOutput() {
		printStatusJSON(w, statuses)
	} else {
		printStatusText(w, statuses)
	}
}

// printStatusJSON outputs the status rows as structured JSON under a
// top-level "services" key.
func printStatusJSON(w io.Writer, statuses []model.ServiceStatus) {
	type resultJSON struct {
		Services []model.ServiceStatus `json:"services"`
	}

	// Use an empty slice instead of nil so JSON output shows []
	// rather than null if the list is ever empty.
	result := resultJSON{Services: make([]model.ServiceStatus, 0, len(statuses))}
	result.Services = append(result.Services, statuses...)

	data, _ := json.MarshalIndent(result, "", "  ")
	fmt.Fprintln(w, string(data))
}

// printStatusText outputs the status rows as a human-readable table
// with aligned columns:
//
//	SERVICE    STATE     PORT   DIR
//	backend    running   4321   /home/dev/project/backend
//	frontend   stopped   3000   /home/dev/project/frontend
func printStatusText(w io.Writer, statuses []model.ServiceStatus) {
	fmt.Fprintf(w, "%-10s %-9s %-6s %s\n", "SERVICE", "STATE", "PORT", "DIR")
	for _, s := range statuses {
		fmt.Fprintf(w, "%-10s %-9s %-6d %s\n", s.Name, s.State, s.Port, s.Dir)
	}
}
