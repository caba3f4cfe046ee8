package native

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/thermokit/fluidprop/engine"
	"github.com/thermokit/fluidprop/errors"
)

// ResolveFluid maps a fluid name to an engine configuration rooted at
// the installation directory base. A predefined mixture (.MIX under
// mixtures/) takes precedence over a pure fluid (.FLD under fluids/);
// both directory spellings are accepted. The mixture configuration
// carries the full .MIX path so the engine can read the file itself.
func ResolveFluid(base, name string) (engine.Config, error) {
	upper := strings.ToUpper(name)

	if p, ok := findFile(base, []string{"mixtures", "MIXTURES"}, upper+".MIX"); ok {
		return engine.Config{Components: []string{p}}, nil
	}
	if _, ok := findFile(base, []string{"fluids", "FLUIDS"}, upper+".FLD"); ok {
		return engine.Config{
			Components:  []string{upper + ".FLD"},
			Composition: []float64{1},
		}, nil
	}

	return engine.Config{}, &errors.Error{
		Phase:  errors.PhaseResolve,
		Kind:   errors.KindNotFound,
		Op:     "resolve fluid",
		Detail: name + " (no .FLD in fluids/ and no .MIX in mixtures/)",
	}
}

// ComponentFiles maps component names to .FLD file names for a custom
// mixture configuration.
func ComponentFiles(names []string) []string {
	files := make([]string, len(names))
	for i, n := range names {
		files[i] = strings.ToUpper(n) + ".FLD"
	}
	return files
}

// PipeList joins component files into the pipe-separated list the
// engine setup call expects, e.g. "R32.FLD|R125.FLD". It exists for
// engine drivers, which receive the component files as a slice via
// engine.Config and flatten them at the library boundary.
func PipeList(files []string) string {
	return strings.Join(files, "|")
}

func findFile(base string, dirs []string, file string) (string, bool) {
	for _, d := range dirs {
		p := filepath.Join(base, d, file)
		if fileExists(p) {
			return p, true
		}
	}
	return "", false
}

func fileExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && !info.IsDir()
}
