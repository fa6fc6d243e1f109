/*
Copyright © 2026 Enegg
*/
package main

import "github.com/Enegg/SuperMechs-bot/cmd"

func main() {
	cmd.Execute()
}
