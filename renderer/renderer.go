// Package renderer builds the markdown views printed by the CLI.
package renderer

import (
	"bytes"
	"fmt"
	"sort"
	"strconv"

	md "github.com/nao1215/markdown"

	"github.com/bunsenliga/kickledger"
)

// Event renders one feed event to a short human line.
func Event(e kickledger.ActivityEvent) string {
	switch e.Type {
	case kickledger.EventTrade:
		buyer, seller := e.Buyer(), e.Seller()
		switch {
		case buyer != "" && seller != "":
			return fmt.Sprintf("%s sold %s to %s for %s", seller, e.Player(), buyer, kickledger.FormatAmount(e.Price()))
		case buyer != "":
			return fmt.Sprintf("%s bought %s from the market for %s", buyer, e.Player(), kickledger.FormatAmount(e.Price()))
		case seller != "":
			return fmt.Sprintf("%s sold %s to the market for %s", seller, e.Player(), kickledger.FormatAmount(e.Price()))
		default:
			return "Trade without parties"
		}
	case kickledger.EventLoginBonus:
		return fmt.Sprintf("Login bonus of %s", kickledger.FormatAmount(e.Bonus()))
	case kickledger.EventAchievement:
		return fmt.Sprintf("Achievement %q (type %d)", e.AchievementName(), e.AchievementType())
	default:
		return fmt.Sprintf("Ignored (type %d)", e.Type)
	}
}

// Summary renders per-manager entry counts and final balances as a markdown table.
func Summary(league string, ledgers map[string]*kickledger.Ledger, stats kickledger.BuildStats) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s — manager balances", league))
	doc.PlainText(fmt.Sprintf("%d managers, %d days since league start", len(ledgers), stats.Days))

	names := make([]string, 0, len(ledgers))
	for name := range ledgers {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]string, 0, len(names))
	for _, name := range names {
		l := ledgers[name]
		rows = append(rows, []string{name, strconv.Itoa(l.Len()), kickledger.FormatAmount(l.Balance())})
	}
	doc.Table(md.TableSet{
		Header: []string{"Manager", "Entries", "Balance"},
		Rows:   rows,
	})

	return doc.String()
}

// Activities renders the filtered feed as a markdown table, followed by the
// collected totals. This is a diagnostic view of the raw feed, not of the
// built ledgers.
func Activities(events []kickledger.ActivityEvent, stats kickledger.BuildStats) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Activities feed")

	rows := make([][]string, 0, len(events))
	for _, e := range events {
		rows = append(rows, []string{e.Date, strconv.Itoa(e.Type), Event(e)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Date", "Code", "Event"},
		Rows:   rows,
	})

	doc.H2("Totals")
	doc.BulletList(
		fmt.Sprintf("%d events since league start, %d trades", stats.Events, stats.Trades),
		fmt.Sprintf("login bonuses seen in the feed: %s (unattributed, not entered in ledgers)", kickledger.FormatAmount(stats.LoginBonusTotal)),
		fmt.Sprintf("achievement rewards resolved: %s", kickledger.FormatAmount(stats.AchievementTotal)),
	)

	return doc.String()
}
