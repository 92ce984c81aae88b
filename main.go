// Package main is the entry point for the toolcatalog CLI application.
//
// The toolcatalog tool loads a category-grouped catalog of tools and prints
// the subset matching the requested search, category, language, technology
// and pricing filters.
package main

import "github.com/ajxudir/toolcatalog/cmd"

func main() {
	cmd.Execute()
}
