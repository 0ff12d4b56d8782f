// Package voice manages the voice preset library: metadata for the
// built-in synthesis voices, cloned-voice reference samples loaded from a
// voices.json manifest, and quality probing of reference audio.
package voice

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// EnvSamplesDir overrides the voice sample directory when set.
const EnvSamplesDir = "MURMUR_VOICE_SAMPLES_DIR"

// manifestName is the library manifest file inside the samples directory.
const manifestName = "voices.json"

var (
	// ErrNotFound indicates an unknown voice ID.
	ErrNotFound = errors.New("voice: not found")
	// ErrNoSample indicates a voice without a reference sample file.
	ErrNoSample = errors.New("voice: no reference sample")
)

// Voice describes one selectable voice preset.
type Voice struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Gender      string `json:"gender,omitempty"`
	Accent      string `json:"accent,omitempty"`
	Style       string `json:"style,omitempty"`
	Description string `json:"description,omitempty"`
	// File is the reference sample path relative to the library dir,
	// empty for built-in voices that need no cloning audio.
	File string `json:"file,omitempty"`
}

// Library holds the resolved voice set and the directory its reference
// samples live in.
type Library struct {
	dir    string
	voices map[string]Voice
	order  []string
}

type manifest struct {
	Voices []Voice `json:"voices"`
}

// ResolveDir picks the samples directory: an explicit path wins, then the
// environment override, then fallbacks.
func ResolveDir(explicit string, fallbacks ...string) string {
	if explicit != "" {
		return explicit
	}
	if env := os.Getenv(EnvSamplesDir); env != "" {
		return env
	}
	for _, dir := range fallbacks {
		if dir == "" {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, manifestName)); err == nil {
			return dir
		}
	}
	return ""
}

// Open loads the library manifest from dir. Voices without an ID are
// skipped; duplicate IDs keep the first occurrence.
func Open(dir string) (*Library, error) {
	data, err := os.ReadFile(filepath.Join(dir, manifestName))
	if err != nil {
		return nil, fmt.Errorf("voice: failed to read manifest: %w", err)
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("voice: failed to parse manifest: %w", err)
	}

	return NewLibrary(dir, m.Voices), nil
}

// NewLibrary builds a Library from an explicit voice list.
func NewLibrary(dir string, voices []Voice) *Library {
	l := &Library{
		dir:    dir,
		voices: make(map[string]Voice, len(voices)),
	}
	for _, v := range voices {
		if v.ID == "" {
			continue
		}
		if _, dup := l.voices[v.ID]; dup {
			continue
		}
		l.voices[v.ID] = v
		l.order = append(l.order, v.ID)
	}
	return l
}

// Dir returns the reference sample directory.
func (l *Library) Dir() string {
	return l.dir
}

// Len returns the number of voices in the library.
func (l *Library) Len() int {
	return len(l.order)
}

// Get returns the voice with the given ID.
func (l *Library) Get(id string) (Voice, bool) {
	v, ok := l.voices[id]
	return v, ok
}

// List returns all voices in manifest order.
func (l *Library) List() []Voice {
	out := make([]Voice, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.voices[id])
	}
	return out
}

// SamplePath returns the absolute reference sample path for a voice.
// Returns ErrNotFound for unknown IDs and ErrNoSample when the voice has
// no sample file or the file is missing on disk.
func (l *Library) SamplePath(id string) (string, error) {
	v, ok := l.voices[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if v.File == "" {
		return "", fmt.Errorf("%w: %q", ErrNoSample, id)
	}

	path := filepath.Join(l.dir, v.File)
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrNoSample, id, err)
	}
	return path, nil
}

// HasSample reports whether a voice has a readable reference sample.
func (l *Library) HasSample(id string) bool {
	_, err := l.SamplePath(id)
	return err == nil
}
