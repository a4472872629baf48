package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ishworgurung/tilix/internal/config"
	"github.com/ishworgurung/tilix/internal/logger"
	"github.com/ishworgurung/tilix/internal/options"
	"github.com/ishworgurung/tilix/internal/params"
	"github.com/ishworgurung/tilix/internal/session"
)

var (
	debugMode             bool
	quietMode             bool
	version, commit, date string
)

// SetVersionInfo sets version information from ldflags
func SetVersionInfo(v, c, d string) {
	version, commit, date = v, c, d
}

// ExitError carries a specific process exit code from a command to main.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

var rootCmd = newRootCmd()

// newRootCmd builds the root command with all invocation flags registered.
// Tests construct their own instance to avoid shared flag state.
func newRootCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "tilix",
		Short: "A tiling terminal emulator with multi-window session support",
		Long: `Tilix is a tiling terminal emulator. Each window hosts one or more
terminals arranged in a tiled layout; saved layouts can be restored from
session files, and a running instance can be driven remotely via actions.`,
		RunE:          runRoot,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	c.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	c.PersistentFlags().BoolVarP(&quietMode, "quiet", "q", false, "Reduce logging to info level only")

	f := c.Flags()
	f.StringP(params.KeyWorkingDirectory, "w", "", "Set the working directory of the terminal")
	f.StringArray(params.KeySession, nil, "Open the specified session file (may be repeated)")
	f.StringP(params.KeyProfile, "p", "", "Use the specified profile for the new terminal")
	f.StringP(params.KeyExecute, "e", "", "Execute the passed command instead of a shell")
	f.String(params.KeyAction, "", "Send an action to the running instance (session-add-right, session-add-down, app-new-session, app-new-window)")
	f.String(params.KeyTerminalUUID, "", "The UUID of the terminal the action targets")
	f.Bool(params.KeyMaximize, false, "Maximize the window")
	f.Bool(params.KeyFullScreen, false, "Open the window in fullscreen mode")
	f.Bool(params.KeyFocusWindow, false, "Focus the existing window")
	f.String(params.KeyGeometry, "", "Set the window size and placement, e.g. 80x24 or 80x24+100-50")
	f.Bool(params.KeyNewProcess, false, "Start a new process even if one is already running")
	f.StringP(params.KeyTitle, "t", "", "Set the window title")

	return c
}

func init() {
	cobra.OnInitialize(initLogging)
}

func initLogging() {
	if quietMode {
		logger.SetDebug(false)
	} else if debugMode {
		logger.SetDebug(true)
	}
}

// Execute runs the root command
func Execute() error {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionTemplate())
	return rootCmd.Execute()
}

func versionTemplate() string {
	if commit != "none" && commit != "" {
		return fmt.Sprintf("tilix %s\n  commit: %s\n  built:  %s\n", version, commit, date)
	}
	return fmt.Sprintf("tilix %s\n", version)
}

func runRoot(cmd *cobra.Command, args []string) error {
	defer logger.Close()

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("cannot determine working directory: %w", err)
	}

	set := params.New(options.NewFlagSource(cmd.Flags()), cwd, os.Getenv, remoteAvailable())
	if set.ExitRequested {
		return &ExitError{Code: set.ExitCode}
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	return dispatch(set, cfg)
}

// dispatch hands the validated invocation to the window layer. Window and
// session creation live beyond this process boundary; this layer loads the
// requested session files and records the effective parameters.
func dispatch(set *params.Set, cfg *config.Config) error {
	profile := set.ProfileName
	if profile == "" && len(set.SessionFiles) == 0 {
		profile = cfg.GetDefaultProfile()
	}

	sessions := make([]*session.Session, 0, len(set.SessionFiles))
	for _, path := range set.SessionFiles {
		sess, err := session.Load(path)
		if err != nil {
			// Existence was already checked; a structurally bad file is
			// still a soft failure at this layer.
			fmt.Printf("Ignoring session file '%s': %v\n", path, err)
			logger.Warn("session file '%s' failed to load: %v", path, err)
			continue
		}
		sessions = append(sessions, sess)
	}

	log := logger.ComponentLogger("Dispatch")
	log.Info("invocation ready",
		"profile", profile,
		"workingDir", set.WorkingDir,
		"sessions", len(sessions),
		"action", set.Action,
		"geometry", fmt.Sprintf("%dx%d%+d%+d", set.GeometryWidth, set.GeometryHeight, set.GeometryX, set.GeometryY),
		"maximize", set.Maximize,
		"fullscreen", set.Fullscreen,
		"focusWindow", set.FocusWindow || cfg.GetFocusNewWindow(),
		"newProcess", set.NewProcess,
	)
	return nil
}

// remoteAvailable reports whether an already-running instance is accepting
// commands, indicated by its control socket in the runtime directory.
func remoteAvailable() bool {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	_, err := os.Stat(filepath.Join(dir, "tilix.sock"))
	return err == nil
}
