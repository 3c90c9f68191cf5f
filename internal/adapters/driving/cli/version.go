package cli

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long: `Print the gsuites version together with the VCS commit it was built
from (when the binary carries build info) and the Go toolchain and platform.`,
	Run: func(cmd *cobra.Command, _ []string) {
		fmt.Fprintln(cmd.OutOrStdout(), versionLine())
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// versionLine renders "gsuites version V (commit C[, modified], GO OS/ARCH)".
func versionLine() string {
	commit, dirty := vcsRevision()
	if commit == "" {
		commit = "unknown"
	}
	if dirty {
		commit += ", modified"
	}
	return fmt.Sprintf("gsuites version %s (commit %s, %s %s/%s)",
		version, commit, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}

// vcsRevision returns the short commit hash stamped by the go command.
func vcsRevision() (commit string, dirty bool) {
	info, ok := readBuildInfo()
	if !ok || info == nil {
		return "", false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			commit = s.Value
			if len(commit) > 12 {
				commit = commit[:12]
			}
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	return commit, dirty
}
