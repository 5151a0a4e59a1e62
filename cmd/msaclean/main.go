// cmd/msaclean/main.go
package main

import (
	"msaclean/internal/app"
	"msaclean/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
