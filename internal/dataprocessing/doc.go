// Package dataprocessing implements the sales data pipeline core: parsing
// raw pipe-delimited lines into field records, validating them against the
// business rules, optional region/amount filtering, and the aggregate
// analytics queries computed over the validated transaction set.
//
// The pipeline is strictly staged. Each stage is a pure function of its
// input and produces a new collection; no stage mutates another's output.
//
// Parsing policy: strict arity. A data line must split into exactly eight
// pipe-delimited fields or it is dropped. Numeric conversion is deferred to
// the validation stage so that conversion failures carry a reason on the
// invalid record instead of being silently discarded.
package dataprocessing
