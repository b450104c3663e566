package keeper

import (
	"context"
	"fmt"
	"testing"

	"cosmossdk.io/log"
	"cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"
	dbm "github.com/cosmos/cosmos-db"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/mojo-protocol/mojo/x/amm/keeper"
	"github.com/mojo-protocol/mojo/x/amm/types"
)

// MockBankKeeper is a map-backed ledger implementing types.BankKeeper.
// Module balances are tracked under a synthetic address per module name.
type MockBankKeeper struct {
	balances map[string]sdk.Coins
}

// NewMockBankKeeper returns an empty mock ledger.
func NewMockBankKeeper() *MockBankKeeper {
	return &MockBankKeeper{balances: make(map[string]sdk.Coins)}
}

func moduleKey(moduleName string) string {
	return "module/" + moduleName
}

// Fund credits an account without any checks. Test setup only.
func (m *MockBankKeeper) Fund(addr sdk.AccAddress, coins sdk.Coins) {
	m.balances[addr.String()] = m.balances[addr.String()].Add(coins...)
}

// Balance returns the full balance of an account.
func (m *MockBankKeeper) Balance(addr sdk.AccAddress) sdk.Coins {
	return m.balances[addr.String()]
}

// GetBalance implements types.BankKeeper.
func (m *MockBankKeeper) GetBalance(_ context.Context, addr sdk.AccAddress, denom string) sdk.Coin {
	return sdk.NewCoin(denom, m.balances[addr.String()].AmountOf(denom))
}

func (m *MockBankKeeper) send(from, to string, amt sdk.Coins) error {
	have := m.balances[from]
	if !have.IsAllGTE(amt) {
		return fmt.Errorf("insufficient funds: %s has %s, needs %s", from, have, amt)
	}
	m.balances[from] = have.Sub(amt...)
	m.balances[to] = m.balances[to].Add(amt...)
	return nil
}

// SendCoins implements types.BankKeeper.
func (m *MockBankKeeper) SendCoins(_ context.Context, fromAddr, toAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.send(fromAddr.String(), toAddr.String(), amt)
}

// SendCoinsFromAccountToModule implements types.BankKeeper.
func (m *MockBankKeeper) SendCoinsFromAccountToModule(_ context.Context, senderAddr sdk.AccAddress, recipientModule string, amt sdk.Coins) error {
	return m.send(senderAddr.String(), moduleKey(recipientModule), amt)
}

// SendCoinsFromModuleToAccount implements types.BankKeeper.
func (m *MockBankKeeper) SendCoinsFromModuleToAccount(_ context.Context, senderModule string, recipientAddr sdk.AccAddress, amt sdk.Coins) error {
	return m.send(moduleKey(senderModule), recipientAddr.String(), amt)
}

// MintCoins implements types.BankKeeper.
func (m *MockBankKeeper) MintCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	m.balances[moduleKey(moduleName)] = m.balances[moduleKey(moduleName)].Add(amt...)
	return nil
}

// BurnCoins implements types.BankKeeper.
func (m *MockBankKeeper) BurnCoins(_ context.Context, moduleName string, amt sdk.Coins) error {
	return m.send(moduleKey(moduleName), "burned", amt)
}

// AmmKeeper creates a test keeper for the amm module over an in-memory
// multistore and a mock bank ledger.
func AmmKeeper(t testing.TB) (*keeper.Keeper, *MockBankKeeper, sdk.Context) {
	storeKey := storetypes.NewKVStoreKey(types.StoreKey)

	db := dbm.NewMemDB()
	stateStore := store.NewCommitMultiStore(db, log.NewNopLogger(), metrics.NewNoOpMetrics())
	stateStore.MountStoreWithDB(storeKey, storetypes.StoreTypeIAVL, db)
	require.NoError(t, stateStore.LoadLatestVersion())

	cdc := codec.NewLegacyAmino()
	bank := NewMockBankKeeper()

	k := keeper.NewKeeper(cdc, storeKey, bank)

	ctx := sdk.NewContext(stateStore, cmtproto.Header{}, false, log.NewNopLogger())

	require.NoError(t, k.InitGenesis(ctx, *types.DefaultGenesis()))

	return k, bank, ctx
}

// FundAccount credits an account on the mock ledger.
func FundAccount(bank *MockBankKeeper, addr sdk.AccAddress, denom string, amount math.Int) {
	bank.Fund(addr, sdk.NewCoins(sdk.NewCoin(denom, amount)))
}
