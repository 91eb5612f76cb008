package runner

import (
	"path/filepath"

	"github.com/patternminer/gsp/gsp"
	"github.com/projectdiscovery/gologger"
	fileutil "github.com/projectdiscovery/utils/file"
)

func init() {
	if fileutil.FileExists(gsp.DefaultConfigFilePath) {
		return
	}
	if err := validateDir(filepath.Dir(gsp.DefaultConfigFilePath)); err != nil {
		gologger.Error().Msgf("gsp config dir not found and failed to create got: %v", err)
		return
	}
	if err := gsp.GenerateSample(gsp.DefaultConfigFilePath); err != nil {
		gologger.Error().Msgf("failed to save default config to %v got: %v", gsp.DefaultConfigFilePath, err)
	}
}

// validateDir checks if dir exists if not creates it
func validateDir(dirPath string) error {
	if fileutil.FolderExists(dirPath) {
		return nil
	}
	return fileutil.CreateFolder(dirPath)
}
