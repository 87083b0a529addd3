package main

import (
	"log"

	"github.com/go-drift/drift/pkg/drift"
)

func main() {
	menu, err := LoadMenu()
	if err != nil {
		log.Fatalf("failed to load tea menu: %v", err)
	}

	app := drift.NewApp(App(menu))
	app.Run()
}
