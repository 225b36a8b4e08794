// Package main GitFleet multi-repository git management API
//
//	@title			GitFleet API
//	@version		1.0.0
//	@description	GitFleet applies git operations across a fleet of repositories
//
//	@contact.name	API Support
//
//	@license.name	Apache 2.0
//	@license.url	http://www.apache.org/licenses/LICENSE-2.0.html
//
//	@host			localhost:3000
//	@BasePath		/api/v1
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gitfleet/gitfleet/internal/cli"
)

//go:generate swag init --parseDependency --outputTypes go -g ./main.go -o ./internal/server/docs

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	ok := cli.Execute(ctx)
	stop()

	if !ok {
		os.Exit(1)
	}
}
