// Package session loads and saves session files.
//
// # Overview
//
// A session file is a serialized saved terminal layout: a named collection
// of terminals, each with its own profile, title, directory, and optional
// command. Loading a session recreates that layout in a new window.
//
// # File Format
//
// Session files are JSON:
//
//	{
//	  "name": "dev",
//	  "uuid": "7a9f...",
//	  "terminals": [
//	    {"uuid": "91c2...", "profile": "default", "directory": "~/src", "command": "make watch"}
//	  ]
//	}
//
// The command-line layer only verifies that a session file exists before
// handing it to this package; Load performs the structural validation
// (parsable JSON, at least one terminal, well-formed UUIDs).
package session
