package main

import "github.com/oshokin/loudness-bindings/cmd/loudness-probe/cmd"

func main() {
	cmd.Execute()
}
