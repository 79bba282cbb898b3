// Command noisegen generates Irwin-Hall noise, bins it and renders the
// histogram to a PNG file.
package main

import "github.com/DriftingOtter/Gaussian-Signal-Generation/cmd/noisegen/cmd"

func main() {
	cmd.Execute()
}
