package main

import "github.com/Portalfi/Portalfi-Backend/cmd"

func main() {
	cmd.Execute()
}
