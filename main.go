package main

import "github.com/isak-s/tysonLang/cmd"

func main() {
	cmd.Execute()
}
