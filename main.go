package main

import "github.com/ankitkandwal-git/publication-Research-Journal/cmd/app"

func main() {
	app.Run()
}
