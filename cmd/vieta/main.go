// Command vieta reads a polynomial description (roots encoded in arbitrary
// bases plus the leading coefficient) and prints its constant term.
package main

import (
	"context"
	"os"

	"github.com/agbru/vieta/internal/app"
)

func main() {
	os.Exit(app.Execute(context.Background(), os.Args, os.Stdout, os.Stderr))
}
