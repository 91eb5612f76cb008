package runner

import (
	"os"

	"github.com/projectdiscovery/gologger"
)

var banner = (`
  ____ ____  ____
 / ___/ ___||  _ \
| |  _\___ \| |_) |
| |_| |___) |  __/
 \____|____/|_|
`)

var version = "v0.0.1"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tsequential pattern mining\n\n")
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}
