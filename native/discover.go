package native

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/joho/godotenv"

	"github.com/thermokit/fluidprop/errors"
)

// PathEnv is the environment variable naming the engine installation
// directory.
const PathEnv = "FLUIDPROP_PATH"

var dotenvOnce sync.Once

// loadDotenv populates the environment from a .env file, checking the
// working directory first and the executable's directory second. Runs
// at most once per process; already-set variables are never
// overwritten (godotenv.Load semantics).
func loadDotenv() {
	dotenvOnce.Do(func() {
		if err := godotenv.Load(); err == nil {
			return
		}
		exe, err := os.Executable()
		if err != nil {
			return
		}
		p := filepath.Join(filepath.Dir(exe), ".env")
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
		}
	})
}

// standardPaths are the conventional installation directories probed
// when neither the environment nor a config file names one.
func standardPaths() []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\Program Files (x86)\REFPROP`,
			`C:\Program Files\REFPROP`,
		}
	case "darwin":
		return []string{"/Applications/REFPROP", "/opt/refprop"}
	default:
		return []string{"/opt/refprop", "/usr/local/lib/refprop"}
	}
}

// FindInstallPath returns the engine installation directory. It loads
// .env once, then tries FLUIDPROP_PATH, the config file path, and the
// platform's standard directories in that order. The returned error
// lists every location tried.
func FindInstallPath() (string, error) {
	loadDotenv()

	var tried []string

	if p := os.Getenv(PathEnv); p != "" {
		if dirExists(p) {
			return p, nil
		}
		tried = append(tried, fmt.Sprintf("%s=%s (directory does not exist)", PathEnv, p))
	}

	if cfg, err := LoadConfig(); err == nil && cfg.Path != "" {
		if dirExists(cfg.Path) {
			return cfg.Path, nil
		}
		tried = append(tried, fmt.Sprintf("%s (from %s, directory does not exist)", cfg.Path, cfg.Source))
	}

	for _, p := range standardPaths() {
		if dirExists(p) {
			return p, nil
		}
		tried = append(tried, p+" (not found)")
	}

	detail := "engine installation not found; set " + PathEnv + " to the directory containing the fluids/ folder. Tried:"
	for _, t := range tried {
		detail += "\n  - " + t
	}
	return "", &errors.Error{
		Phase:  errors.PhaseResolve,
		Kind:   errors.KindNotFound,
		Op:     "find install path",
		Detail: detail,
	}
}

func dirExists(p string) bool {
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}
