// Package debug provides env-gated trace logging for the pipeline.
//
// Tracing is off unless enabled through the environment:
//
//	IDS_DEBUG_PARSE=1  traces the tolerant scanner line by line
//	IDS_DEBUG_SCHEMA=1 traces validation findings
//	IDS_DEBUG_ENCODE=1 traces XML encoding
package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Parse  bool
	Schema bool
	Encode bool
}

var d *debug

func init() {
	d = &debug{}
	d.Parse = boolEnv("IDS_DEBUG_PARSE")
	d.Schema = boolEnv("IDS_DEBUG_SCHEMA")
	d.Encode = boolEnv("IDS_DEBUG_ENCODE")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Parse() bool {
	return d.Parse
}
func Schema() bool {
	return d.Schema
}
func Encode() bool {
	return d.Encode
}
