package main

import "github.com/wojciech1000000/FitnessTracker/cmd"

func main() {
	cmd.Execute()
}
