// Package fuzz holds libFuzzer harnesses for the block primitive, built
// with go-118-fuzz-build under the gofuzz tag. It contains no code in
// regular builds.
package fuzz
