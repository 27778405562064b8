//go:build !linux
// +build !linux

package benchmark

import "os"

const pageCacheDropSupported = false

func dropPageCache(*os.File) error { return nil }
