// Package toolchain inspects the external binaries the two dev servers
// depend on (python, yarn, node, git) for the doctor command.
//
// All inspection is performed via os/exec calls to the binaries
// themselves rather than any library bindings: the versions reported
// are exactly what the user's shell would resolve, including virtualenv
// and PATH effects.
package toolchain
