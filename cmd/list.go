package cmd

import (
	"github.com/mj1618/active-window/internal/output"
	"github.com/mj1618/active-window/internal/windows"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every on-screen window",
	Long:  "List every on-screen window in front-to-back order. Same as active-window --open-windows-list.",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().Bool("no-accessibility-permission", false, "Skip the accessibility permission check and do not read browser tabs")
	listCmd.Flags().Bool("no-screen-recording-permission", false, "Skip the screen recording permission check and do not report window titles")
	listCmd.Flags().Int("pid", 0, "Only report windows owned by this PID")
}

func runList(cmd *cobra.Command, args []string) error {
	enumerator, err := newEnumerator(appConfig)
	if err != nil {
		return err
	}

	opts := windows.Options{
		AllWindows:          true,
		SkipAccessibility:   boolSetting(cmd, "no-accessibility-permission", appConfig.NoAccessibilityPermission),
		SkipScreenRecording: boolSetting(cmd, "no-screen-recording-permission", appConfig.NoScreenRecordingPermission),
	}

	result, err := enumerator.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	pid, _ := cmd.Flags().GetInt("pid")
	if pid != 0 {
		result = result.OwnedBy(pid)
	}
	return output.Print(result.Value())
}
