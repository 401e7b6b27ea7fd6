// Package port implements the TCP probe used by the status command to
// detect whether a dev server is already accepting connections.
//
// The probe asks the OS network stack directly via a short dial to
// localhost rather than parsing /proc/net/* or shelling out to lsof/ss,
// which may require elevated permissions and vary across platforms.
// A successful dial means some process is listening on the port; the
// probe does not verify it is the expected dev server.
package port
