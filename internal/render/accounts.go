package render

import (
	"strconv"

	"github.com/stakewatch/stakewatch/internal/emitter"
	"github.com/stakewatch/stakewatch/internal/token"
)

// accountHeaders are the columns of the account summary table. The
// leading blank column holds the row index.
var accountHeaders = []string{"", "Staking", "Account", "ETH", "NU"}

// AccountTable renders one summary row per wallet account: whether the
// account is staking, its address, and its ETH and NU balances.
func AccountTable(em emitter.Emitter, wallet Wallet, registry Registry, provider StakeProvider) {
	accounts := wallet.Accounts()
	rows := make([][]string, 0, len(accounts))
	for i, account := range accounts {
		staking := "No"
		if len(provider.Stakes(account)) > 0 {
			staking = "Yes"
		}
		rows = append(rows, []string{
			strconv.Itoa(i),
			staking,
			account,
			token.WeiToETH(wallet.ETHBalance(account)),
			wallet.TokenBalance(account, registry).String(),
		})
	}
	echoTable(em, accountHeaders, rows)
}
