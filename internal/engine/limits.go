// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package engine

import "fmt"

// DepthLimits holds the search depth limit for every supported board size.
type DepthLimits struct {
	Size3 int `env:"SIZE_3" json:"size_3"`
	Size4 int `env:"SIZE_4" json:"size_4"`
	Size5 int `env:"SIZE_5" json:"size_5"`
}

// DefaultDepthLimits searches the whole 3×3 tree and stays shallow on the
// larger boards.
var DefaultDepthLimits = DepthLimits{Size3: 10, Size4: 5, Size5: 3}

// For returns the limit configured for size.
func (l DepthLimits) For(size int) (int, error) {
	switch size {
	case 3:
		return l.Size3, nil
	case 4:
		return l.Size4, nil
	case 5:
		return l.Size5, nil
	}
	return 0, fmt.Errorf("%w: %d", ErrUnsupportedBoard, size)
}

// Validate checks that no limit is negative.
func (l DepthLimits) Validate() error {
	for size, v := range map[int]int{3: l.Size3, 4: l.Size4, 5: l.Size5} {
		if v < 0 {
			return fmt.Errorf("%w: %d for size %d", ErrInvalidDepth, v, size)
		}
	}
	return nil
}
