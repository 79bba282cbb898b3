// Package report presents the outcome of a run.
//
// Console output echoes the sample buffer, a summary table, the bin
// contents and a text histogram. A Report value carries the same outcome
// without the raw samples and can be published to Kafka through a
// Publisher.
package report
