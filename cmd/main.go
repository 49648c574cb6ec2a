package main

import (
	"github.com/teraskopi54/pos/internal/app"
	"github.com/teraskopi54/pos/internal/config"
)

func main() {
	config.MustInit()
	app.MustNewApp().Run()
}
