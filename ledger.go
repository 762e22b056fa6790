package kickledger

import (
	"fmt"
	"log"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/bunsenliga/kickledger/date"
)

// EntryKind classifies a ledger entry.
type EntryKind string

// Entry kinds appearing in a manager statement.
const (
	KindStart            EntryKind = "start"
	KindBuy              EntryKind = "buy"
	KindSell             EntryKind = "sell"
	KindLoginBonus       EntryKind = "login_bonus"
	KindAchievementBonus EntryKind = "achievement_bonus"
)

// Default build parameters.
const (
	DefaultStartBudget = 50_000_000
	DefaultStartDate   = "2025-12-22"
	DailyLoginBonus    = 100_000
)

// Entry is one line of a manager statement.
type Entry struct {
	Date        string // ISO-8601 timestamp; lexicographic order is chronological
	Kind        EntryKind
	Description string
	Amount      int64 // signed, currency units
	Balance     int64 // running balance after this entry
}

// Ledger is the ordered transaction history of one manager.
// After Build the entries are sorted by date and carry running balances.
type Ledger struct {
	entries []Entry
}

func (l *Ledger) add(e Entry) { l.entries = append(l.entries, e) }

// finish sorts the entries chronologically and computes running balances,
// starting from zero so that the start-budget entry is itself the first credit.
func (l *Ledger) finish() {
	sort.SliceStable(l.entries, func(i, j int) bool { return l.entries[i].Date < l.entries[j].Date })
	var saldo int64
	for i := range l.entries {
		saldo += l.entries[i].Amount
		l.entries[i].Balance = saldo
	}
}

// Entries returns the entries in their current order.
func (l *Ledger) Entries() []Entry { return l.entries }

// Len returns the number of entries.
func (l *Ledger) Len() int { return len(l.entries) }

// Balance returns the final running balance, 0 for an empty ledger.
func (l *Ledger) Balance() int64 {
	if len(l.entries) == 0 {
		return 0
	}
	return l.entries[len(l.entries)-1].Balance
}

// Manager identifies one league member.
type Manager struct {
	ID   string
	Name string
}

// RewardResolver resolves the reward granted for an achievement type code,
// as a unit count and a per-unit amount. Lookups are best effort: an error
// only drops that achievement from the league-wide total.
type RewardResolver func(achievementType int) (count, perUnit int64, err error)

// BuildConfig carries the parameters of a ledger build. Passing it
// explicitly keeps the builder testable against synthetic inputs.
type BuildConfig struct {
	StartBudget int64
	StartDate   date.Date
	DailyBonus  int64
	Now         date.Date
	Rewards     RewardResolver // nil disables achievement resolution
}

// Days returns the number of daily bonuses owed: every day from the league
// start to Now inclusive, so the start date itself counts as day 1.
func (c BuildConfig) Days() int { return c.Now.Sub(c.StartDate) + 1 }

// BuildStats summarizes feed-level totals gathered during a build.
type BuildStats struct {
	Events           int   // events remaining after the start-date filter
	Trades           int   // trade events with at least one known party
	LoginBonusTotal  int64 // collected from type-22 events, diagnostics only
	AchievementTotal int64 // league-wide resolved achievement rewards
	AchievementShare int64 // per-manager floor share of AchievementTotal
	Days             int   // daily bonuses owed per manager
}

// Build reconstructs one ledger per manager from the activities feed.
//
// Trade events append buy/sell entries to the parties' ledgers. Login-bonus
// events are only tallied: the feed does not attribute them to managers, so a
// synthetic fixed daily bonus is credited to everyone instead. Achievement
// rewards cannot be attributed either and are split equally as an explicit
// estimate. Every manager in the directory gets the synthetic entries, with
// or without trade activity.
//
// Ledgers are keyed by manager name because that is the only identity the
// feed's trade payloads carry. A directory name collision therefore merges
// two managers into one statement; it is detected and logged.
func Build(events []ActivityEvent, managers []Manager, cfg BuildConfig) (map[string]*Ledger, BuildStats) {
	ledgers := make(map[string]*Ledger)
	ledger := func(name string) *Ledger {
		l, ok := ledgers[name]
		if !ok {
			l = &Ledger{}
			ledgers[name] = l
		}
		return l
	}

	var stats BuildStats
	stats.Days = cfg.Days()
	startDay := cfg.StartDate.String()

	for _, e := range FilterEvents(events, cfg.StartDate) {
		stats.Events++

		switch e.Type {
		case EventTrade:
			buyer, seller := e.Buyer(), e.Seller()
			if buyer == "" && seller == "" {
				continue
			}
			stats.Trades++
			player, price := e.Player(), e.Price()
			if buyer != "" {
				desc := fmt.Sprintf("Bought %s (market)", player)
				if seller != "" {
					desc = fmt.Sprintf("Bought %s from %s", player, seller)
				}
				ledger(buyer).add(Entry{Date: e.Date, Kind: KindBuy, Description: desc, Amount: -price})
			}
			if seller != "" {
				desc := fmt.Sprintf("Sold %s (market)", player)
				if buyer != "" {
					desc = fmt.Sprintf("Sold %s to %s", player, buyer)
				}
				ledger(seller).add(Entry{Date: e.Date, Kind: KindSell, Description: desc, Amount: price})
			}

		case EventLoginBonus:
			stats.LoginBonusTotal += e.Bonus()

		case EventAchievement:
			if cfg.Rewards == nil {
				continue
			}
			count, perUnit, err := cfg.Rewards(e.AchievementType())
			if err != nil {
				continue
			}
			if reward := count * perUnit; reward > 0 {
				stats.AchievementTotal += reward
			}
		}
	}

	if n := len(managers); n > 0 && stats.AchievementTotal > 0 {
		total := decimal.NewFromInt(stats.AchievementTotal)
		stats.AchievementShare = total.Div(decimal.NewFromInt(int64(n))).Floor().IntPart()
	}

	// Index the directory by name, surfacing collisions.
	names := make(map[string]string, len(managers))
	for _, m := range managers {
		if prev, ok := names[m.Name]; ok && prev != m.ID {
			log.Printf("warning: managers %s and %s share the name %q, their statements will merge", prev, m.ID, m.Name)
		}
		names[m.Name] = m.ID
	}

	// Synthetic entries for every directory manager, active or not.
	for name := range names {
		l := ledger(name)
		l.add(Entry{
			Date:        startDay + "T00:00:00Z",
			Kind:        KindStart,
			Description: "Starting budget",
			Amount:      cfg.StartBudget,
		})
		for day := 0; day < stats.Days; day++ {
			l.add(Entry{
				Date:        cfg.StartDate.Add(day).String() + "T00:00:00Z",
				Kind:        KindLoginBonus,
				Description: fmt.Sprintf("Daily login bonus (day %d)", day+1),
				Amount:      cfg.DailyBonus,
			})
		}
		if stats.AchievementShare > 0 {
			l.add(Entry{
				Date:        startDay + "T00:00:02Z",
				Kind:        KindAchievementBonus,
				Description: fmt.Sprintf("Achievement bonus (estimated, %s total ÷ %d managers)", FormatAmount(stats.AchievementTotal), len(managers)),
				Amount:      stats.AchievementShare,
			})
		}
	}

	for _, l := range ledgers {
		l.finish()
	}
	return ledgers, stats
}
