package runner

import (
	"github.com/projectdiscovery/gologger"
	updateutils "github.com/projectdiscovery/utils/update"
)

var banner = `
   _                 _
  (_)___  _______   (_)___ ___
 / / __ \/ ___/ _ \/ / __ '__ \
/ / /_/ / /__/  __/ / / / / / /
/_/\____/\___/\___/_/_/ /_/ /_/
`

var version = "v0.0.1"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tsimilarity analysis for IOC lists\n\n")
}

// GetUpdateCallback returns a callback function that updates iocsim
func GetUpdateCallback() func() {
	return func() {
		showBanner()
		updateutils.GetUpdateToolCallback("iocsim", version)()
	}
}
