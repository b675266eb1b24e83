package main

import "github.com/humanitec/humctl-login/cmd"

func main() {
	cmd.Execute()
}
