package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ishworgurung/tilix/internal/logger"
)

var skipConfirm bool

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove all tilix log files",
	Long: `Removes the debug log and any per-window log files from /tmp.

It will prompt for confirmation before proceeding unless the --yes flag
is used.`,
	RunE: runClean,
}

func init() {
	cleanCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(cleanCmd)
}

// confirm prompts on stdout and reads a yes/no answer from input.
// Anything other than y/yes (case-insensitive) declines.
func confirm(input io.Reader, prompt string) bool {
	fmt.Printf("%s [y/N] ", prompt)
	reader := bufio.NewReader(input)
	answer, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func runClean(cmd *cobra.Command, args []string) error {
	return runCleanWithReader(os.Stdin)
}

// runCleanWithReader allows injecting a reader for testing
func runCleanWithReader(input io.Reader) error {
	if !skipConfirm && !confirm(input, "Remove all tilix log files?") {
		fmt.Println("Aborted")
		return nil
	}

	count, err := logger.ClearLogs()
	if err != nil {
		return fmt.Errorf("error removing log files: %w", err)
	}
	fmt.Printf("Removed %d log file(s)\n", count)
	return nil
}
