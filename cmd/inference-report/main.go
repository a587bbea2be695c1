package main

import (
	"context"
	"os"

	"github.com/inferbench/inference-report/internal/app"
)

func main() {
	os.Exit(app.Execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
