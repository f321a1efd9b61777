// cmd/varseq/main.go
package main

import (
	"varseq/internal/app"
	"varseq/internal/appshell"
)

func main() { appshell.Main(app.RunContext) }
