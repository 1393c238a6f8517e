package main

import "github.com/gomistakes/gomistakes/cmd/gomistakes"

func main() { gomistakes.Execute() }
