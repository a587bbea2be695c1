// Package orchestration builds the final report: it gathers the experiments
// tree, optionally gathers a single baseline run, and joins the two with
// comparison columns. Collection and presentation are reached through the
// Gatherer and ReportPresenter interfaces.
package orchestration
