package kickledger

import (
	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"

	"github.com/bunsenliga/kickledger/date"
)

// Event type codes used in the activities feed.
const (
	EventTrade       = 15
	EventLoginBonus  = 22
	EventAchievement = 26
)

// ActivityEvent is one raw record from the league activities feed.
// Events are immutable inputs: the shape of Data depends on Type, and
// fields the exporter does not consume are simply carried along.
type ActivityEvent struct {
	Type int            `json:"t"`
	Date string         `json:"dt"`   // ISO-8601 timestamp
	Data map[string]any `json:"data"` // loosely typed payload
}

// Day returns the date portion (YYYY-MM-DD) of the event timestamp.
func (e ActivityEvent) Day() string {
	if len(e.Date) < 10 {
		return e.Date
	}
	return e.Date[:10]
}

// field extracts a payload field by jsonpath, or nil when absent.
func (e ActivityEvent) field(path string) any {
	jval, err := jsonpath.Get(path, any(e.Data))
	if err != nil {
		return nil
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	return jval
}

func (e ActivityEvent) stringField(path string) string {
	s, _ := e.field(path).(string)
	return s
}

// amountField reads a numeric payload field as whole currency units.
// The feed encodes amounts as JSON numbers, occasionally as strings.
func (e ActivityEvent) amountField(path string) int64 {
	switch v := e.field(path).(type) {
	case float64:
		return decimal.NewFromFloat(v).Round(0).IntPart()
	case string:
		d, err := decimal.NewFromString(v)
		if err != nil {
			return 0
		}
		return d.Round(0).IntPart()
	}
	return 0
}

// Typed accessors for the payload fields the exporter consumes.

// Buyer returns the buying manager's name on a trade event, or "".
func (e ActivityEvent) Buyer() string { return e.stringField("$.byr") }

// Seller returns the selling manager's name on a trade event, or "".
func (e ActivityEvent) Seller() string { return e.stringField("$.slr") }

// Player returns the traded player's name.
func (e ActivityEvent) Player() string {
	if p := e.stringField("$.pn"); p != "" {
		return p
	}
	return "Unknown"
}

// Price returns the trade price in currency units.
func (e ActivityEvent) Price() int64 { return e.amountField("$.trp") }

// Bonus returns the login bonus amount.
func (e ActivityEvent) Bonus() int64 { return e.amountField("$.bn") }

// AchievementType returns the achievement type code.
func (e ActivityEvent) AchievementType() int { return int(e.amountField("$.t")) }

// AchievementName returns the achievement display name.
func (e ActivityEvent) AchievementName() string {
	if n := e.stringField("$.n"); n != "" {
		return n
	}
	return "Achievement"
}

// FilterEvents drops events dated strictly before the league start date.
// The feed reaches back before the league was reset, so everything older
// belongs to a previous season. Comparison is on the YYYY-MM-DD prefix,
// which sorts chronologically.
func FilterEvents(events []ActivityEvent, start date.Date) []ActivityEvent {
	day := start.String()
	kept := make([]ActivityEvent, 0, len(events))
	for _, e := range events {
		if e.Day() < day {
			continue
		}
		kept = append(kept, e)
	}
	return kept
}
