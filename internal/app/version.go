package app

// Version is the build version, set with
// -ldflags "-X github.com/inferbench/inference-report/internal/app.Version=v1.0.0".
var Version = "dev"
