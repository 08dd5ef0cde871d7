package pricing

import (
	"errors"

	"crease/internal/domain/slot"
)

var ErrNoSlots = errors.New("no slots selected")

const DiscountTypeConsecutive = "CONSECUTIVE"

// SlotPrice is one slot's resolved pricing inside a quote.
type SlotPrice struct {
	Window slot.Window
	Slab   slot.Slab
	Single int64
	// Half the configured consecutive-pair rate; summing this across an
	// unbroken run yields the discounted total.
	ConsecutiveHalf int64
}

// Quote carries both totals so the booking records original price, charged
// price, and their difference.
type Quote struct {
	Slots          []SlotPrice
	OriginalTotal  int64
	Total          int64
	DiscountAmount int64
	DiscountType   string
	HasSavings     bool
}

type Engine struct {
	table           Table
	slabs           slot.SlabConfig
	discountEnabled bool
}

func NewEngine(table Table, slabs slot.SlabConfig, discountEnabled bool) *Engine {
	return &Engine{
		table:           table,
		slabs:           slabs,
		discountEnabled: discountEnabled,
	}
}

// PriceSlot resolves one slot's rate and slab label.
func (e *Engine) PriceSlot(sub SubType, pitch PitchType, w slot.Window) SlotPrice {
	slab := e.slabs.SlabFor(w.Start)
	rate := e.table.Rate(sub, pitch, slab)
	return SlotPrice{
		Window:          w,
		Slab:            slab,
		Single:          rate.Single,
		ConsecutiveHalf: rate.Consecutive / 2,
	}
}

// Quote prices a selection. The original total is always the sum of single
// rates. When the selection is one unbroken run of two or more slots, the
// consecutive total is the sum of each slot's half-pair rate; the discount is
// applied only when that total is strictly lower.
func (e *Engine) Quote(sub SubType, pitch PitchType, windows []slot.Window) (Quote, error) {
	if len(windows) == 0 {
		return Quote{}, ErrNoSlots
	}

	sorted := slot.SortedByStart(windows)
	slots := make([]SlotPrice, len(sorted))
	var originalTotal, consecutiveTotal int64
	for i, w := range sorted {
		sp := e.PriceSlot(sub, pitch, w)
		slots[i] = sp
		originalTotal += sp.Single
		consecutiveTotal += sp.ConsecutiveHalf
	}

	q := Quote{
		Slots:         slots,
		OriginalTotal: originalTotal,
		Total:         originalTotal,
	}

	if e.discountEnabled && slot.Consecutive(sorted) && consecutiveTotal < originalTotal {
		q.Total = consecutiveTotal
		q.DiscountAmount = originalTotal - consecutiveTotal
		q.DiscountType = DiscountTypeConsecutive
		q.HasSavings = true
	}

	return q, nil
}
