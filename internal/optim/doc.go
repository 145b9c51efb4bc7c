// Package optim scans run parameters over a grid, evaluating every point
// concurrently and keeping the one that minimizes a chosen metric.
package optim
