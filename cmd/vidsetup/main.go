// Command vidsetup performs first-time environment setup for the video
// personalization server: toolchain preflight, directory provisioning,
// dependency installation, and a template library audit.
package main

import "github.com/cherryvid/vidsetup/internal/cli"

func main() {
	cli.Main()
}
