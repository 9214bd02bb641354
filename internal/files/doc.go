// Package files handles reading the pipe-delimited sales data file and
// writing pipeline outputs. Reading tolerates UTF-8, Latin-1 and CP1252
// encodings; writing is always UTF-8.
package files
