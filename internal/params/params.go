// Package params builds the validated parameter set for one command-line
// invocation. Extraction, path validation, conflict detection, and geometry
// parsing all happen eagerly in New; the resulting Set is read-only for the
// rest of the invocation.
package params

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/ishworgurung/tilix/internal/errors"
	"github.com/ishworgurung/tilix/internal/logger"
	"github.com/ishworgurung/tilix/internal/options"
)

// Recognized option keys.
const (
	KeyWorkingDirectory = "working-directory"
	KeySession          = "session"
	KeyProfile          = "profile"
	KeyExecute          = "execute"
	KeyAction           = "action"
	KeyTerminalUUID     = "terminalUUID"
	KeyMaximize         = "maximize"
	KeyFullScreen       = "full-screen"
	KeyFocusWindow      = "focus-window"
	KeyGeometry         = "geometry"
	KeyNewProcess       = "new-process"
	KeyTitle            = "title"
)

// Exit codes surfaced to the calling shell.
const (
	ExitOK                   = 0
	ExitSessionConflict      = 1
	ExitActionRequiresRemote = 2
)

// Environ looks up an environment variable, returning "" when unset.
// It exists so tests can control PWD without touching the process environment.
type Environ func(key string) string

// output is where user-facing warnings are written.
// It can be swapped for testing via SetOutput.
var output io.Writer = os.Stdout

// SetOutput sets the writer for user-facing warnings.
// This is primarily used for testing.
func SetOutput(w io.Writer) {
	output = w
}

// Set holds the effective parameters of one invocation. It is built once by
// New and not mutated afterwards; Clear exists for explicit reuse of the
// same storage (synthetic invocations, tests).
type Set struct {
	WorkingDir   string
	SessionFiles []string
	ProfileName  string
	Title        string
	Execute      string
	Action       string
	TerminalUUID string

	// CWD and PWD are the process's actual working directory and the
	// inherited PWD value, both validated as directories.
	CWD string
	PWD string

	// Geometry; X/Y are only populated when the full grammar matched.
	GeometryWidth  int
	GeometryHeight int
	GeometryX      int
	GeometryY      int

	Maximize    bool
	Fullscreen  bool
	FocusWindow bool
	NewProcess  bool

	// CommandLinePath is the invocation-time working directory, verbatim.
	CommandLinePath string

	// ExitRequested marks the invocation as unable to proceed; ExitCode is
	// the process exit code to surface. Callers must check ExitRequested
	// before acting on any other field.
	ExitRequested bool
	ExitCode      int
}

// New extracts, validates, and normalizes the parameters of one invocation.
// src is the parsed option bag, cwd the process working directory, getenv the
// environment lookup, and remote whether this invocation targets an
// already-running instance. Soft failures (bad paths, missing session files,
// unparsable geometry) degrade to empty fields with a warning; conflicting
// options set ExitRequested with a specific ExitCode.
func New(src options.Source, cwd string, getenv Environ, remote bool) *Set {
	s := &Set{
		SessionFiles: []string{},
		ExitCode:     ExitOK,
	}

	s.CommandLinePath = cwd
	s.CWD = validatePath(cwd)
	s.PWD = validatePath(getenv("PWD"))

	s.WorkingDir = validatePath(options.GetString(src, KeyWorkingDirectory))
	s.SessionFiles = filterSessionFiles(options.GetStringList(src, KeySession))
	s.ProfileName = options.GetString(src, KeyProfile)
	s.Title = options.GetString(src, KeyTitle)
	s.Execute = options.GetString(src, KeyExecute)
	s.Action = options.GetString(src, KeyAction)
	s.TerminalUUID = validateTerminalUUID(options.GetString(src, KeyTerminalUUID))

	s.Maximize = options.GetFlag(src, KeyMaximize)
	s.Fullscreen = options.GetFlag(src, KeyFullScreen)
	s.FocusWindow = options.GetFlag(src, KeyFocusWindow)
	s.NewProcess = options.GetFlag(src, KeyNewProcess)

	// Rule A: a session list cannot be combined with options that describe
	// a single new terminal.
	if len(s.SessionFiles) > 0 && (s.ProfileName != "" || s.WorkingDir != "" || s.Execute != "") {
		fmt.Fprintln(output, "You cannot load a session and set a profile, working directory or command to execute at the same time")
		logger.Warn("%v", errors.SessionConflict())
		s.ExitRequested = true
		s.ExitCode = ExitSessionConflict
	}

	// Rule B: actions only make sense against an already-running instance.
	if s.Action != "" && !remote {
		fmt.Fprintln(output, "The action option only applies when targeting an already-running instance")
		logger.Warn("%v", errors.ActionRequiresRemote(s.Action))
		s.Action = ""
		s.ExitRequested = true
		s.ExitCode = ExitActionRequiresRemote
	}

	if geometry := options.GetString(src, KeyGeometry); geometry != "" {
		s.GeometryWidth, s.GeometryHeight, s.GeometryX, s.GeometryY = parseGeometry(geometry)
	}

	logger.Debug("invocation parsed: workingDir=%q sessions=%d profile=%q exitRequested=%v exitCode=%d",
		s.WorkingDir, len(s.SessionFiles), s.ProfileName, s.ExitRequested, s.ExitCode)

	return s
}

// Clear resets every field to its zero value, allowing the same storage to
// be reused for a subsequent synthetic invocation.
func (s *Set) Clear() {
	*s = Set{SessionFiles: []string{}}
}

// validatePath expands a leading ~ and verifies the result is an existing
// directory. Invalid paths degrade to "" with a warning; empty input returns
// "" silently. Never fatal.
func validatePath(path string) string {
	if path == "" {
		return ""
	}

	expanded := expandHome(path)
	info, err := os.Stat(expanded)
	if err != nil || !info.IsDir() {
		fmt.Fprintf(output, "Ignoring as '%s' is not a directory\n", path)
		logger.Warn("path '%s' is not a directory, ignoring", path)
		return ""
	}
	return expanded
}

// filterSessionFiles drops entries that are not existing regular files,
// preserving the relative order of survivors. Dropped entries warn but are
// never fatal; the conflict rules decide whether the result is usable.
func filterSessionFiles(files []string) []string {
	kept := make([]string, 0, len(files))
	for _, f := range files {
		expanded := expandHome(f)
		info, err := os.Stat(expanded)
		if err != nil || !info.Mode().IsRegular() {
			fmt.Fprintf(output, "Ignoring '%s' as it is not a session file (requested sessions: %s)\n",
				f, strings.Join(files, ", "))
			logger.Warn("session file '%s' does not exist or is not a regular file", f)
			continue
		}
		kept = append(kept, expanded)
	}
	return kept
}

// validateTerminalUUID clears a terminal identifier that does not parse as a
// UUID. Soft failure, never fatal.
func validateTerminalUUID(id string) string {
	if id == "" {
		return ""
	}
	if _, err := uuid.Parse(id); err != nil {
		fmt.Fprintf(output, "Ignoring '%s' as it is not a valid terminal UUID\n", id)
		logger.Warn("terminalUUID '%s' is not a valid UUID", id)
		return ""
	}
	return id
}

// expandHome replaces a leading ~ with the user's home directory.
func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
