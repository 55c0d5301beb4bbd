// Copyright 2025 The SitesRJ Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/sitesrj/sitesrj/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
