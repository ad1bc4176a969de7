package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLiteJournal{db: db}, nil
}

func (j *SQLiteJournal) RecordTrade(t TradeRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO trades
		(trade_id, order_id, time, side, pair, price, quantity, notional)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.TradeID, t.OrderID, t.Time, t.Side, t.Pair,
		t.Price, t.Quantity, t.Notional,
	)
	return err
}

func (j *SQLiteJournal) RecordEquity(e EquitySnapshot) error {
	_, err := j.db.Exec(`
		INSERT INTO equity
		(time, cash, total_value, unrealized_pnl)
		VALUES (?, ?, ?, ?)`,
		e.Time, e.Cash, e.TotalValue, e.UnrealizedPnL,
	)
	return err
}

// TradeCount reports how many fills have been recorded.
func (j *SQLiteJournal) TradeCount() (int, error) {
	var n int
	err := j.db.QueryRow(`SELECT COUNT(*) FROM trades`).Scan(&n)
	return n, err
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
