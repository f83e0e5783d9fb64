package main

import "github.com/lingki1/phone-sub002/cmd/phone/cmd"

func main() {
	cmd.Execute()
}
