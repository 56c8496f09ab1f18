// Copyright (c) 2026 Sommelier. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package salespoint handles the point-of-sale flags shared by wines and dishes.
//
// A restaurant has Count slots (bar, terrace, room...). An entity carries one
// boolean per slot telling whether it is offered there.
package salespoint

// Context describes the points of sale of the managed restaurant.
type Context struct {
	// Count is the number of point-of-sale slots. Values below 1 mean 1.
	Count int
}

// Normalize returns a copy of points padded with false up to count.
// Missing points default to a single active first slot.
func Normalize(points []bool, count int) []bool {
	if count < 1 {
		count = 1
	}

	if len(points) == 0 {
		normalized := make([]bool, count)
		normalized[0] = true
		return normalized
	}

	normalized := make([]bool, max(count, len(points)))
	copy(normalized, points)
	return normalized
}
