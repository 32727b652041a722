// Command sortie narrates a scripted recon drone demonstration.
package main

import "github.com/mesh-aero/sortie/internal/cli"

func main() {
	cli.Execute()
}
