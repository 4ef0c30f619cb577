package align

import (
	"errors"
	"fmt"
	"math"

	"github.com/pbnjay/memory"
)

// ErrMatrixTooLarge is returned by CheckDims when a pair of sequences needs
// more alignment cells than allowed
var ErrMatrixTooLarge = errors.New("alignment matrix too large")

// cellSize is the size in bytes of one alignment matrix cell
const cellSize = 4

// DefaultMaxCells is the number of alignment cells that fit in a quarter of
// the physical memory. If the memory size is unknown it is 1<<28.
func DefaultMaxCells() int64 {
	total := memory.TotalMemory()
	if total == 0 {
		return 1 << 28
	}
	cells := total / 4 / cellSize
	if cells > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(cells)
}

// CheckDims returns an error if aligning sequences of lengths len1 and len2 would
// need more than maxCells cells, or a matrix whose size does not fit in an int.
// maxCells <= 0 means no limit beyond overflow.
func CheckDims(len1, len2 int, maxCells int64) error {
	if len1 < 0 || len2 < 0 {
		return fmt.Errorf("negative sequence length (%d, %d)", len1, len2)
	}
	if len1 == 0 || len2 == 0 {
		return nil
	}
	if int64(len1) > math.MaxInt64/int64(len2) {
		return fmt.Errorf("%w: %d x %d overflows", ErrMatrixTooLarge, len1, len2)
	}
	cells := int64(len1) * int64(len2)
	if cells > int64(math.MaxInt)/cellSize {
		return fmt.Errorf("%w: %d x %d overflows", ErrMatrixTooLarge, len1, len2)
	}
	if maxCells > 0 && cells > maxCells {
		return fmt.Errorf("%w: %d x %d is more than %d cells", ErrMatrixTooLarge, len1, len2, maxCells)
	}
	return nil
}
