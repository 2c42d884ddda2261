package main

import "github.com/Saba-Kandashvili/Coherent-Guided-Stochastic-Maze-Engine/cmd/corridor/cmd"

func main() {
	cmd.Execute()
}
