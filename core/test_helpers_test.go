// SPDX-License-Identifier: MIT
// Package core_test contains shared fixtures for core tests.

package core_test

import "github.com/katalvlaran/routefinder/core"

// Concurrency sizes used across core tests.
const (
	NReaders = 50
	NRounds  = 200
)

// FixtureEdges returns the reference graph used throughout the tests:
//
//	1→2(1) 2→3(1) 3→4(1) 2→1(1) 1→4(4) 5→6(1) 6→3(1)
func FixtureEdges() []core.EdgeRecord {
	return []core.EdgeRecord{
		{Src: 1, Dst: 2, W: 1},
		{Src: 2, Dst: 3, W: 1},
		{Src: 3, Dst: 4, W: 1},
		{Src: 2, Dst: 1, W: 1},
		{Src: 1, Dst: 4, W: 4},
		{Src: 5, Dst: 6, W: 1},
		{Src: 6, Dst: 3, W: 1},
	}
}
