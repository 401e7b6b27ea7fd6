// Package launcher performs the terminal step of a devlaunch run:
// changing into the service directory, activating the backend's
// virtualenv when required, and replacing the launcher's own process
// image with the service's start command.
//
// Process replacement is a true exec on Unix (same PID, no return on
// success). Windows has no exec primitive, so the launcher spawns the
// child with inherited stdio, waits, and exits with the child's status —
// the externally observable contract (exit code propagation, no
// lingering launcher process) is the same.
//
// Working-directory and environment mutations are process-global and
// irreversible within a run. That is acceptable here: they happen
// immediately before the replacement step and nothing in this process
// runs afterwards.
package launcher
