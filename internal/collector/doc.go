// Package collector discovers benchmark runs under a directory tree and
// joins each run's results CSV with its flattened Hydra config into one
// report row.
//
// A run is a directory holding both inference_results.csv and
// hydra_config.yaml. Runs are discovered recursively, paired by directory,
// loaded concurrently and aggregated in lexical directory order, so the
// resulting report never depends on filesystem enumeration order.
package collector
