package main

import "svcctl/cmd"

// version is set at build time with -ldflags "-X main.version=x.y.z".
var version = "dev"

func main() {
	cmd.SetVersion(version)
	cmd.Execute()
}
