package journal

const Schema = `
CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	order_id TEXT NOT NULL,
	time DATETIME NOT NULL,
	side TEXT NOT NULL,
	pair TEXT NOT NULL,
	price REAL NOT NULL,
	quantity REAL NOT NULL,
	notional REAL NOT NULL
);

CREATE TABLE IF NOT EXISTS equity (
	time DATETIME NOT NULL,
	cash REAL NOT NULL,
	total_value REAL NOT NULL,
	unrealized_pnl REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_time ON trades(time);
CREATE INDEX IF NOT EXISTS idx_equity_time ON equity(time);
`
