package main

import "github.com/alist-org/biliqr/cmd"

func main() {
	cmd.Execute()
}
