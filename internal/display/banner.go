package display

import (
	"fmt"
	"os"

	"github.com/cherryvid/vidsetup/internal/logging"
)

// PrintBanner prints the ASCII art banner; colored cyan when colors are enabled.
func PrintBanner() {
	if logging.Cyan != "" {
		fmt.Fprint(os.Stdout, logging.Cyan)
	}
	fmt.Fprint(os.Stdout, ` __     ___     _ ____       _
 \ \   / (_) __| / ___|  ___| |_ _   _ _ __
  \ \ / /| |/ _`+"`"+` \___ \ / _ \ __| | | | '_ \
   \ V / | | (_| |___) |  __/ |_| |_| | |_) |
    \_/  |_|\__,_|____/ \___|\__|\__,_| .__/
                                      |_|
`)
	if logging.Cyan != "" {
		fmt.Fprintln(os.Stdout, logging.NC)
	}
}

// PrintNextSteps prints the fixed post-setup instructions for starting the
// video generation server.
func PrintNextSteps(python string) {
	fmt.Fprintln(os.Stdout)
	fmt.Fprintln(os.Stdout, "Next steps:")
	fmt.Fprintf(os.Stdout, "  1. Start the server:  %s server.py\n", python)
	fmt.Fprintln(os.Stdout, "  2. Open:              http://localhost:5000")
	fmt.Fprintln(os.Stdout)
}
