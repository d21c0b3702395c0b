package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// ERC-20 function selectors (first four bytes of the keccak256 hash of the
// canonical signature).
var (
	balanceOfSelector = common.Hex2Bytes("70a08231") // balanceOf(address)
	allowanceSelector = common.Hex2Bytes("dd62ed3e") // allowance(address,address)
	approveSelector   = common.Hex2Bytes("095ea7b3") // approve(address,uint256)
	transferSelector  = common.Hex2Bytes("a9059cbb") // transfer(address,uint256)
)

func balanceOfCalldata(account common.Address) []byte {
	return append(append([]byte{}, balanceOfSelector...),
		common.LeftPadBytes(account.Bytes(), 32)...)
}

func allowanceCalldata(owner, spender common.Address) []byte {
	data := append([]byte{}, allowanceSelector...)
	data = append(data, common.LeftPadBytes(owner.Bytes(), 32)...)
	return append(data, common.LeftPadBytes(spender.Bytes(), 32)...)
}

func approveCalldata(spender common.Address, amount *big.Int) []byte {
	data := append([]byte{}, approveSelector...)
	data = append(data, common.LeftPadBytes(spender.Bytes(), 32)...)
	return append(data, common.LeftPadBytes(amount.Bytes(), 32)...)
}

func transferCalldata(to common.Address, amount *big.Int) []byte {
	data := append([]byte{}, transferSelector...)
	data = append(data, common.LeftPadBytes(to.Bytes(), 32)...)
	return append(data, common.LeftPadBytes(amount.Bytes(), 32)...)
}
