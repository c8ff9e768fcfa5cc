// Package builder runs the full pipeline for one view file: parse,
// inventory, classify, render, write, log the run and remove the original.
package builder
