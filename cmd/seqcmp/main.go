// cmd/seqcmp/main.go
package main

import (
	"seqcmp/internal/app"
	"seqcmp/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
