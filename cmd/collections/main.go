package main

import "github.com/fahrenkrug/rust-learn-book-collections/internal/cli"

func main() {
	cli.Execute()
}
