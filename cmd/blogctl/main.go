package main

import "blog-essentials/cmd/blogctl/cli"

func main() {
	cli.Execute()
}
