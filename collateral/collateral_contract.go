package collateral

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
	"github.com/meritledger/merit-contract/common"
)

type (
	// Token holds all token info.
	Token struct {
		// Ticker symbol
		Symbol string
		// Amount of decimals
		Decimals int
		// Storage key for circulation value
		CirculationKey string
	}

	// Account stores the custody balance of a single Merit account.
	Account struct {
		// Active balance
		Balance int
	}
)

const (
	symbol      = "MCOL"
	decimals    = 8
	circulation = "TotalGAS"

	meritContractKey = "meritScriptHash"

	accountKeyPrefix = 'a'
)

var token Token

func createToken() Token {
	return Token{
		Symbol:         symbol,
		Decimals:       decimals,
		CirculationKey: circulation,
	}
}

func init() {
	token = createToken()
}

// nolint:deadcode,unused
func _deploy(data interface{}, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]interface{})
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	args := data.(struct {
		admin         interop.Hash160
		meritContract interop.Hash160
	})

	if len(args.admin) != interop.Hash160Len {
		panic(common.ErrValidationFailed + ": incorrect administrator script hash")
	}
	if len(args.meritContract) != interop.Hash160Len {
		panic(common.ErrValidationFailed + ": incorrect merit contract script hash")
	}

	storage.Put(ctx, common.AdminKey, args.admin)
	storage.Put(ctx, meritContractKey, args.meritContract)

	runtime.Log("collateral contract initialized")
}

// Update method updates contract source code and manifest. It can be
// invoked only by the administrator.
func Update(script []byte, manifest []byte, data interface{}) {
	ctx := storage.GetReadOnlyContext()
	if !common.HasUpdateAccess(ctx) {
		panic("only administrator can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, script, manifest, common.AppendVersion(data))
	runtime.Log("collateral contract updated")
}

// Symbol is a NEP-17 standard method that returns the custody token symbol.
func Symbol() string {
	return token.Symbol
}

// Decimals is a NEP-17 standard method that returns precision of custody
// balances.
func Decimals() int {
	return token.Decimals
}

// TotalSupply is a NEP-17 standard method that returns the total amount of
// GAS deposited into the Merit protocol.
func TotalSupply() int {
	ctx := storage.GetReadOnlyContext()
	return token.getSupply(ctx)
}

// BalanceOf is a NEP-17 standard method that returns the custody balance of
// the specified account.
func BalanceOf(account interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return token.balanceOf(ctx, account)
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS contract.
// Receiving GAS mints an equal custody balance to the sender, or to the
// account passed in the data argument.
//
// Produces Deposit notification.
func OnNEP17Payment(from interop.Hash160, amount int, data interface{}) {
	caller := runtime.GetCallingScriptHash()
	if !common.BytesEqual(caller, interop.Hash160(gas.Hash)) {
		panic(common.ErrValidationFailed + ": only GAS can be accepted for deposit")
	}

	if amount <= 0 {
		panic(common.ErrValidationFailed + ": non-positive deposit amount")
	}

	rcv := data.(interop.Hash160)
	switch len(rcv) {
	case interop.Hash160Len:
	case 0:
		rcv = from
	default:
		panic(common.ErrValidationFailed + ": invalid data argument, expected Hash160")
	}

	ctx := storage.GetContext()

	acc := getAccount(ctx, accountKey(rcv))
	acc.Balance = acc.Balance + amount
	common.SetSerialized(ctx, accountKey(rcv), acc)

	supply := token.getSupply(ctx)
	storage.Put(ctx, token.CirculationKey, supply+amount)

	runtime.Log("funds have been deposited")
	runtime.Notify("Deposit", from, amount, rcv)
}

// Transfer is a NEP-17 standard method that moves custody balance between
// accounts. It can be invoked only by the owner of the source account.
//
// Produces Transfer notification.
func Transfer(from, to interop.Hash160, amount int, data interface{}) bool {
	ctx := storage.GetContext()
	return token.transfer(ctx, from, to, amount, false, nil)
}

// TransferX moves custody balance on behalf of the protocol: it is how the
// Merit contract charges registration collateral into its custody. It can
// be invoked only by the Merit contract or by the administrator.
//
// Produces Transfer and TransferX notifications.
func TransferX(from, to interop.Hash160, amount int, details []byte) {
	ctx := storage.GetContext()

	caller := runtime.GetCallingScriptHash()
	meritContract := storage.Get(ctx, meritContractKey).(interop.Hash160)
	if !common.BytesEqual(caller, meritContract) {
		common.CheckAdminWitness(ctx)
	}

	result := token.transfer(ctx, from, to, amount, true, details)
	if !result {
		panic(common.ErrInsufficientCollateral + ": can't transfer assets")
	}

	runtime.Log("successfully transferred assets")
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

// getSupply gets the token totalSupply value from VM storage.
func (t Token) getSupply(ctx storage.Context) int {
	supply := storage.Get(ctx, t.CirculationKey)
	if supply != nil {
		return supply.(int)
	}

	return 0
}

// balanceOf gets the token balance of a specific address.
func (t Token) balanceOf(ctx storage.Context, holder interop.Hash160) int {
	acc := getAccount(ctx, accountKey(holder))

	return acc.Balance
}

func (t Token) transfer(ctx storage.Context, from, to interop.Hash160, amount int, protocol bool, details []byte) bool {
	amountFrom, ok := t.canTransfer(ctx, from, to, amount, protocol)
	if !ok {
		return false
	}

	if amountFrom.Balance == amount {
		storage.Delete(ctx, accountKey(from))
	} else {
		amountFrom.Balance = amountFrom.Balance - amount // neo-go#953
		common.SetSerialized(ctx, accountKey(from), amountFrom)
	}

	amountTo := getAccount(ctx, accountKey(to))
	amountTo.Balance = amountTo.Balance + amount // neo-go#953
	common.SetSerialized(ctx, accountKey(to), amountTo)

	runtime.Notify("Transfer", from, to, amount)
	if protocol {
		runtime.Notify("TransferX", from, to, amount, details)
	}

	return true
}

// canTransfer returns the account state of the source when the transfer is
// allowed.
func (t Token) canTransfer(ctx storage.Context, from, to interop.Hash160, amount int, protocol bool) (Account, bool) {
	var emptyAcc = Account{}

	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len {
		runtime.Log("bad script hashes")
		return emptyAcc, false
	}

	if amount <= 0 {
		runtime.Log("non-positive amount")
		return emptyAcc, false
	}

	if !protocol && !isUsableAddress(from) {
		runtime.Log("sender is not authorized")
		return emptyAcc, false
	}

	amountFrom := getAccount(ctx, accountKey(from))
	if amountFrom.Balance < amount {
		runtime.Log("not enough assets")
		return emptyAcc, false
	}

	// return amountFrom value back to transfer, reduces extra Get
	return amountFrom, true
}

// isUsableAddress checks if the sender is either a signer of the
// transaction or the calling contract itself.
func isUsableAddress(addr interop.Hash160) bool {
	if len(addr) == interop.Hash160Len {
		if runtime.CheckWitness(addr) {
			return true
		}

		// Check if a smart contract is calling script hash
		callingScriptHash := runtime.GetCallingScriptHash()
		if common.BytesEqual(callingScriptHash, addr) {
			return true
		}
	}

	return false
}

func getAccount(ctx storage.Context, key interface{}) Account {
	data := storage.Get(ctx, key)
	if data != nil {
		return std.Deserialize(data.([]byte)).(Account)
	}

	return Account{}
}

func accountKey(holder interop.Hash160) []byte {
	return append([]byte{accountKeyPrefix}, holder...)
}
