/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package main

import "github.com/Z-ajamy/AirBnB-clone-v3/cmd/hbnbd/cmd"

func main() {
	cmd.Execute()
}
