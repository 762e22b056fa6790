package kickledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strconv"
	"strings"
	"time"
)

// statementHeader is the fixed column schema of an exported statement.
// "saldo" is the running balance.
var statementHeader = []string{"date", "type", "description", "amount", "saldo"}

const displayTimeFormat = "2006-01-02 15:04:05"

// displayTime normalizes an ISO-8601 feed timestamp to the statement's
// display format, in UTC.
func displayTime(iso string) string {
	t, err := time.Parse(time.RFC3339Nano, iso)
	if err != nil {
		// The feed occasionally drops the timezone; keep the raw text rather than losing the row.
		return strings.NewReplacer("T", " ", "Z", "").Replace(iso)
	}
	return t.UTC().Format(displayTimeFormat)
}

// StatementPath returns the export path of a manager statement.
func StatementPath(dir, name string) string {
	return filepath.Join(dir, name+"_transactions.csv")
}

// WriteStatement writes one manager statement as CSV, one row per entry in
// the ledger's current order.
func WriteStatement(w io.Writer, l *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(statementHeader); err != nil {
		return err
	}
	for _, e := range l.Entries() {
		rec := []string{
			displayTime(e.Date),
			string(e.Kind),
			e.Description,
			strconv.FormatInt(e.Amount, 10),
			strconv.FormatInt(e.Balance, 10),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// Export writes one statement file per manager with a non-empty ledger into
// dir, creating it if needed and silently overwriting previous exports. It
// returns the exported manager names in lexical order.
func Export(dir string, ledgers map[string]*Ledger) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create output directory %q: %w", dir, err)
	}

	names := make([]string, 0, len(ledgers))
	for name, l := range ledgers {
		if l.Len() == 0 {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		if err := exportOne(StatementPath(dir, name), ledgers[name]); err != nil {
			return nil, err
		}
	}
	return names, nil
}

func exportOne(path string, l *Ledger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create statement %q: %w", path, err)
	}
	err = WriteStatement(f, l)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("cannot write statement %q: %w", path, err)
	}
	return nil
}

// ReadStatement parses a statement previously written by WriteStatement.
// Entry dates come back in the display format, balances as written.
func ReadStatement(r io.Reader) (*Ledger, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot parse statement: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("statement has no header row")
	}
	if !slices.Equal(records[0], statementHeader) {
		return nil, fmt.Errorf("unexpected statement header %v", records[0])
	}

	l := &Ledger{}
	for _, rec := range records[1:] {
		amount, err := strconv.ParseInt(rec[3], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid amount %q: %w", rec[3], err)
		}
		saldo, err := strconv.ParseInt(rec[4], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid saldo %q: %w", rec[4], err)
		}
		l.entries = append(l.entries, Entry{
			Date:        rec[0],
			Kind:        EntryKind(rec[1]),
			Description: rec[2],
			Amount:      amount,
			Balance:     saldo,
		})
	}
	return l, nil
}
