// Package debug holds process-wide debug switches, set from the
// environment at init. Each switch gates verbose logging in one subsystem,
// for example GQLAST_DEBUG_VISIT=1 traces the rewrite engine.
package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Visit   bool
	Combine bool
	Value   bool
	Diff    bool
	Patch   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Visit = boolEnv("GQLAST_DEBUG_VISIT")
	d.Combine = boolEnv("GQLAST_DEBUG_COMBINE")
	d.Value = boolEnv("GQLAST_DEBUG_VALUE")
	d.Diff = boolEnv("GQLAST_DEBUG_DIFF")
	d.Patch = boolEnv("GQLAST_DEBUG_PATCH")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Visit() bool {
	return d.Visit
}
func Combine() bool {
	return d.Combine
}
func Value() bool {
	return d.Value
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
