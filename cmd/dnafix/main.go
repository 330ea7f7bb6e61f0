// cmd/dnafix/main.go
package main

import (
	"dnafix/internal/app"
	"dnafix/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
