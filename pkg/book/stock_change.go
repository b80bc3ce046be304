package book

import "fmt"

type stockMode uint8

const (
	modeSet stockMode = iota + 1
	modeAdd
)

// StockChange is either an absolute stock value or a signed delta. Build it
// with SetAbsolute or AddDelta; the zero value is not a valid change.
type StockChange struct {
	mode  stockMode
	value int
}

// SetAbsolute replaces the stock with v.
func SetAbsolute(v int) StockChange { return StockChange{mode: modeSet, value: v} }

// AddDelta adds v, which may be negative, to the stock.
func AddDelta(v int) StockChange { return StockChange{mode: modeAdd, value: v} }

// ParseStockChange converts the two optional request fields into a
// StockChange. Exactly one of them must be set.
func ParseStockChange(setStock, delta *int) (StockChange, error) {
	switch {
	case setStock == nil && delta == nil:
		return StockChange{}, ErrNoStockChange
	case setStock != nil && delta != nil:
		return StockChange{}, ErrAmbiguousStockChange
	case setStock != nil:
		if *setStock < 0 {
			return StockChange{}, ErrNegativeStock
		}
		return SetAbsolute(*setStock), nil
	default:
		return AddDelta(*delta), nil
	}
}

// IsAbsolute reports whether c replaces the stock rather than adding to it.
func (c StockChange) IsAbsolute() bool { return c.mode == modeSet }

// Value returns the absolute value or the delta.
func (c StockChange) Value() int { return c.value }

func (c StockChange) String() string {
	switch c.mode {
	case modeSet:
		return fmt.Sprintf("set(%d)", c.value)
	case modeAdd:
		return fmt.Sprintf("delta(%+d)", c.value)
	default:
		return "none"
	}
}
