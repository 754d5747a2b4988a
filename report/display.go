package report

import (
	"fmt"
	"time"

	"github.com/pterm/pterm"
)

var (
	SuccessColorFG = pterm.FgLightGreen
	SuccessStyleBG = pterm.NewStyle(pterm.BgLightGreen, pterm.FgBlack)
	WarnColorFG    = pterm.FgYellow
	WarnStyleBG    = pterm.NewStyle(pterm.BgYellow, pterm.FgBlack)
	ErrorColorFG   = pterm.FgRed
	ErrorStyleBG   = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
	InfoColorFG    = SuccessColorFG
	InfoStyleBG    = SuccessStyleBG
)

// DisplayInfoMessage displays a tagged informational message to the user.
func DisplayInfoMessage(tag, msg string) {
	if rep == nil || rep.logLevel > LogLevelWarn {
		InfoStyleBG.Print(tag)
		InfoColorFG.Println(" " + msg)
	}
}

// DisplayDebugMessage displays a tagged trace message.  Traces only appear at
// the verbose log level; they are silent when the reporter is uninitialized.
func DisplayDebugMessage(tag, msg string) {
	if rep != nil && rep.logLevel >= LogLevelVerbose {
		InfoStyleBG.Print(tag)
		InfoColorFG.Println(" " + msg)
	}
}

// ReportBuildFinished displays the concluding message of a successful build:
// where the output was written and how long the build took.
func ReportBuildFinished(outputPath string) {
	if rep != nil && rep.logLevel > LogLevelWarn {
		elapsed := time.Since(rep.startTime).Round(time.Millisecond)
		DisplayInfoMessage("Done", fmt.Sprintf("wrote %s (%s)", outputPath, elapsed))
	}
}

// -----------------------------------------------------------------------------

// displayICE displays an internal compiler error message.
func displayICE(msg string) {
	ErrorStyleBG.Print("Internal Error")
	ErrorColorFG.Println(" " + msg)
	fmt.Println("This error was not supposed to happen: please open an issue on the gradc tracker")
}

// displayFatal displays a fatal error message.
func displayFatal(msg string) {
	ErrorStyleBG.Print("Fatal Error")
	ErrorColorFG.Println(" " + msg)
}

// displayError displays a standard error message.
func displayError(msg string) {
	ErrorStyleBG.Print("Error")
	ErrorColorFG.Println(" " + msg)
}

// displayWarning displays a warning message.
func displayWarning(msg string) {
	WarnStyleBG.Print("Warning")
	WarnColorFG.Println(" " + msg)
}
