// Package normalisers holds the text pipelines that turn raw record field
// values into display output. Each pipeline implements driven.Formatter.
//
// The vlm package handles free-form vision-language model output.
package normalisers
