// Package journal records executed fills and equity snapshots. Records are
// write-only: the portfolio is never reconstructed from a journal.
package journal

import "time"

// TradeRecord is one executed fill as written to the journal.
type TradeRecord struct {
	TradeID  string
	OrderID  string
	Time     time.Time
	Side     string
	Pair     string
	Price    float64
	Quantity float64
	Notional float64
}

// EquitySnapshot captures the account valuation at one point in time.
type EquitySnapshot struct {
	Time          time.Time
	Cash          float64
	TotalValue    float64
	UnrealizedPnL float64
}

type Journal interface {
	RecordTrade(TradeRecord) error
	RecordEquity(EquitySnapshot) error
	Close() error
}

// Discard is a Journal that drops every record.
type Discard struct{}

func (Discard) RecordTrade(TradeRecord) error { return nil }

func (Discard) RecordEquity(EquitySnapshot) error { return nil }

func (Discard) Close() error { return nil }
