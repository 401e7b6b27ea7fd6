// Package project resolves the filesystem layout of the two-service
// project that devlaunch operates on.
//
// The project root defaults to the directory containing the devlaunch
// executable itself (symlinks resolved), matching the convention of
// dropping the launcher binary at the top of the project checkout.
// Service directories are fixed offsets from the root, adjustable via
// the launch configuration.
//
// Resolution never touches the services themselves — it is pure path
// arithmetic. Existence checks happen where they matter: the launcher
// fails on chdir, and the status/doctor commands report a missing
// directory explicitly.
package project
