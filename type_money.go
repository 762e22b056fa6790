package kickledger

import "github.com/Rhymond/go-money"

// The in-game currency has no minor unit. Registering it lets go-money's
// formatter render whole amounts with thousand separators.
const gameCurrency = "KKB"

func init() {
	money.AddCurrency(gameCurrency, "", "1", ".", ",", 0)
}

// FormatAmount renders a whole-unit currency amount for humans, e.g. "50,000,000".
func FormatAmount(v int64) string {
	return money.New(v, gameCurrency).Display()
}
