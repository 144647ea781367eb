//go:build tools
// +build tools

package fuzzydatetime

import (
	_ "golang.org/x/tools/cmd/stringer"
)
