package cmd

import (
	"fmt"
	"runtime/debug"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const unknownVersion = "tabanon version: unknown"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the tabanon build version, the VCS revision it was built from and the Go version.",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, line := range versionLines(debug.ReadBuildInfo()) {
				cmd.Println(line)
			}
		},
	}
}

// versionLines formats build information; revision is omitted when the
// binary was built outside a VCS checkout.
func versionLines(info *debug.BuildInfo, ok bool) []string {
	if !ok || info == nil || info.Main.Version == "" {
		return []string{unknownVersion}
	}

	lines := []string{fmt.Sprintf("tabanon version\t %s", info.Main.Version)}

	settings := lo.SliceToMap(info.Settings, func(s debug.BuildSetting) (string, string) { return s.Key, s.Value })
	if revision := settings["vcs.revision"]; revision != "" {
		if settings["vcs.modified"] == "true" {
			revision += " (modified)"
		}

		lines = append(lines, fmt.Sprintf("revision\t %s", revision))
	}

	return append(lines, fmt.Sprintf("go version\t %s", info.GoVersion))
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
