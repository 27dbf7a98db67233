// Package monitor renders diagnostic views of analysis runs and ring
// geometry for tuning work: static PNG plots via gonum/plot and
// interactive HTML charts via go-echarts.
//
// Everything here is read-only over the result types. The package
// depends on climb, analysis, and geometry but is never imported by
// them, so diagnostics can change freely without touching the
// pipeline.
package monitor
