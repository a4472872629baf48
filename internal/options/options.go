// Package options abstracts the command-line option bag. The rest of the
// application reads typed values through the Source interface and never
// touches the flag library directly.
package options

import "github.com/spf13/pflag"

// Source answers typed lookups against a parsed option bag. Absence is
// reported through the second return value or a zero value, never an error.
type Source interface {
	// String returns the value for key and whether it was supplied.
	String(key string) (string, bool)
	// StringList returns the values for a repeatable key, or nil.
	StringList(key string) []string
	// Flag reports whether a presence-only flag was set.
	Flag(key string) bool
}

// FlagSource adapts a parsed pflag.FlagSet to the Source interface.
// Only flags the user actually supplied count as present.
type FlagSource struct {
	fs *pflag.FlagSet
}

// NewFlagSource wraps a parsed flag set.
func NewFlagSource(fs *pflag.FlagSet) *FlagSource {
	return &FlagSource{fs: fs}
}

func (s *FlagSource) String(key string) (string, bool) {
	if !s.fs.Changed(key) {
		return "", false
	}
	v, err := s.fs.GetString(key)
	if err != nil {
		return "", false
	}
	return v, true
}

func (s *FlagSource) StringList(key string) []string {
	if !s.fs.Changed(key) {
		return nil
	}
	v, err := s.fs.GetStringArray(key)
	if err != nil {
		return nil
	}
	return v
}

func (s *FlagSource) Flag(key string) bool {
	if !s.fs.Changed(key) {
		return false
	}
	v, err := s.fs.GetBool(key)
	if err != nil {
		return false
	}
	return v
}

// MapSource is an in-memory Source for tests and synthetic invocations.
type MapSource struct {
	Strings map[string]string
	Lists   map[string][]string
	Flags   map[string]bool
}

func (s *MapSource) String(key string) (string, bool) {
	v, ok := s.Strings[key]
	return v, ok
}

func (s *MapSource) StringList(key string) []string {
	return s.Lists[key]
}

func (s *MapSource) Flag(key string) bool {
	return s.Flags[key]
}

// GetString returns the string value for key, or "" when absent.
func GetString(src Source, key string) string {
	v, _ := src.String(key)
	return v
}

// GetStringList returns the list value for key, or an empty slice when absent.
func GetStringList(src Source, key string) []string {
	v := src.StringList(key)
	if v == nil {
		return []string{}
	}
	return v
}

// GetFlag reports whether the presence-only flag key was set.
func GetFlag(src Source, key string) bool {
	return src.Flag(key)
}
