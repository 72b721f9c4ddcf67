// Package cmd provides command implementations for the DashCraft CLI.
package cmd

// Exit codes.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError = 1

	// ExitConfigError indicates the dashboard configuration is invalid.
	ExitConfigError = 2

	// ExitFilesystemError indicates a create, write, or delete failure.
	ExitFilesystemError = 3

	// ExitConflictError indicates colliding component ids.
	ExitConflictError = 4

	// ExitUnsafePurge indicates the purge target failed the safety check.
	ExitUnsafePurge = 5
)

// ExitCodeName returns the name of the exit code.
func ExitCodeName(code int) string {
	switch code {
	case ExitSuccess:
		return "Success"
	case ExitGeneralError:
		return "General Error"
	case ExitConfigError:
		return "Config Error"
	case ExitFilesystemError:
		return "Filesystem Error"
	case ExitConflictError:
		return "Conflict Error"
	case ExitUnsafePurge:
		return "Unsafe Purge"
	default:
		return "Unknown"
	}
}
