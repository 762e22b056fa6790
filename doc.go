// Package kickledger reconstructs per-manager transaction ledgers for a
// Kickbase league from its activities feed and exports them as
// balance-annotated CSV statements.
//
// The feed is an incomplete record: it carries trades, but login bonuses are
// unattributed and achievement rewards name no earner. The builder therefore
// synthesizes a start-budget entry, a fixed daily login bonus, and an
// equal-split achievement estimate for every manager, then sorts each ledger
// chronologically and computes running balances.
package kickledger
