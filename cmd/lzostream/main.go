package main

import (
	"os"

	"github.com/arloliu/lzostream/cmd/lzostream/app"
)

func main() {
	os.Exit(app.Execute(os.Args[1:], app.DefaultStreams()))
}
