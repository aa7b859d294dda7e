package utils

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/charmbracelet/log"
)

// PathResolver locates the data and config files the helper needs,
// regardless of where the binary was launched from.
type PathResolver struct {
	executablePath string
	executableDir  string
	homeDir        string
	configDir      string
}

// corpusFiles are the filenames that mark a directory as a usable
// data directory, in lookup order.
var corpusFiles = []string{"words.sqlite", "words.txt"}

// NewPathResolver builds a resolver anchored at the running binary.
func NewPathResolver() (*PathResolver, error) {
	execPath, err := os.Executable()
	if err != nil {
		return nil, err
	}
	execPath, err = filepath.EvalSymlinks(execPath)
	if err != nil {
		return nil, err
	}
	execDir := filepath.Dir(execPath)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Warnf("Could not determine home directory: %v", err)
		homeDir = os.TempDir()
	}

	configDir := getConfigDir(homeDir)

	pr := &PathResolver{
		executablePath: execPath,
		executableDir:  execDir,
		homeDir:        homeDir,
		configDir:      configDir,
	}
	log.Debugf("PathResolver initialized: exec=%s, execDir=%s, configDir=%s",
		execPath, execDir, configDir)
	return pr, nil
}

// getConfigDir returns the per-platform config directory.
func getConfigDir(homeDir string) string {
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, ".config", "wordhelper")
	case "linux":
		if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
			return filepath.Join(configHome, "wordhelper")
		}
		return filepath.Join(homeDir, ".config", "wordhelper")
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "wordhelper")
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "wordhelper")
	default:
		return filepath.Join(homeDir, ".wordhelper")
	}
}

// GetDataDir resolves the directory holding the corpus files.
// Candidates in order: the user path as given (if absolute), relative
// to the executable, relative to the working directory, then a few
// conventional locations.
func (pr *PathResolver) GetDataDir(userSpecifiedPath string) (string, error) {
	var candidatePaths []string

	if filepath.IsAbs(userSpecifiedPath) {
		candidatePaths = append(candidatePaths, userSpecifiedPath)
	}

	execRelativePath := filepath.Join(pr.executableDir, userSpecifiedPath)
	candidatePaths = append(candidatePaths, execRelativePath)

	if cwd, err := os.Getwd(); err == nil {
		candidatePaths = append(candidatePaths, filepath.Join(cwd, userSpecifiedPath))
	}

	candidatePaths = append(candidatePaths,
		filepath.Join(pr.executableDir, "data"),
		filepath.Join(filepath.Dir(pr.executableDir), "data"),
		filepath.Join(pr.configDir, "data"),
	)

	for _, path := range candidatePaths {
		if pr.isValidDataDir(path) {
			log.Debugf("Found valid data directory: %s", path)
			return path, nil
		}
		log.Debugf("Data directory candidate not valid: %s", path)
	}

	// Nothing matched; hand back the most likely path so the caller
	// can report a useful error.
	return execRelativePath, nil
}

// isValidDataDir reports whether a directory holds a corpus file.
func (pr *PathResolver) isValidDataDir(path string) bool {
	if stat, err := os.Stat(path); err != nil || !stat.IsDir() {
		return false
	}
	for _, name := range corpusFiles {
		if FileExists(filepath.Join(path, name)) {
			return true
		}
	}
	return false
}

// FindCorpus returns the corpus file inside a data directory,
// preferring the SQLite database over the plain-text list.
func (pr *PathResolver) FindCorpus(dataDir string) (string, bool) {
	for _, name := range corpusFiles {
		path := filepath.Join(dataDir, name)
		if FileExists(path) {
			return path, true
		}
	}
	return "", false
}

// GetConfigPath returns the full path for a config file, ensuring the
// config directory exists and falling back when it is not writable.
func (pr *PathResolver) GetConfigPath(filename string) (string, error) {
	configPath := filepath.Join(pr.configDir, filename)
	if pr.ensureConfigDir(pr.configDir) {
		return configPath, nil
	}

	fallbackDirs := []string{
		filepath.Join(pr.homeDir, ".wordhelper"),
		filepath.Join(os.TempDir(), "wordhelper"),
		pr.executableDir,
	}
	for _, dir := range fallbackDirs {
		if pr.ensureConfigDir(dir) {
			path := filepath.Join(dir, filename)
			log.Warnf("Using fallback config location: %s", path)
			return path, nil
		}
	}

	tempPath := filepath.Join(os.TempDir(), filename)
	log.Warnf("Using temporary config file: %s", tempPath)
	return tempPath, nil
}

// ensureConfigDir makes sure a directory exists and is writable.
func (pr *PathResolver) ensureConfigDir(dir string) bool {
	result := CheckDirStatus(dir)
	return result.Exists && result.Writable
}
