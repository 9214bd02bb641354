// Package exporter writes pipeline outputs: the pipe-delimited enriched
// data file (input columns plus the four API metadata columns) and an XLSX
// workbook of the same data for spreadsheet consumers. Reading the enriched
// file back yields the identical transaction set, which keeps the written
// output verifiable.
package exporter
