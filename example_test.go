// rpcwire: Ethereum JSON-RPC wire codecs
// Copyright 2024 rpcwire Authors
// SPDX-License-Identifier: BSD-3-Clause

package rpcwire_test

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/karalabe/rpcwire"
)

func ExampleDecodeQuantity() {
	q, err := rpcwire.DecodeQuantity("0x1bc16d674ec80000", rpcwire.Strict)
	fmt.Println(q.Big(), err)

	_, err = rpcwire.DecodeQuantity("0x01", rpcwire.Strict)
	fmt.Println(errors.Is(err, rpcwire.ErrLeadingZero))

	q, _ = rpcwire.DecodeQuantity("0x01", rpcwire.Lenient)
	fmt.Println(q)
	// Output:
	// 2000000000000000000 <nil>
	// true
	// 0x1
}

func ExampleDecodeBytes() {
	b, _ := rpcwire.DecodeBytes("0xDEADbeef")
	fmt.Println(b, len(b))

	_, err := rpcwire.DecodeBytes("0xabc")
	fmt.Println(errors.Is(err, rpcwire.ErrOddLength))
	// Output:
	// 0xdeadbeef 4
	// true
}

func ExampleParseAddress() {
	_, err := rpcwire.ParseAddress("0xdead")
	fmt.Println(errors.Is(err, rpcwire.ErrLengthMismatch))

	addr, _ := rpcwire.ParseAddress("0x000000000000000000000000000000000000dEaD")
	fmt.Println(addr)
	// Output:
	// true
	// 0x000000000000000000000000000000000000dead
}

// Transactions mix all the value kinds, with some historically sloppy fields
// tolerating leading zeroes.
func Example_json() {
	var tx struct {
		To    rpcwire.Address         `json:"to"`
		Gas   rpcwire.Uint64          `json:"gas"`
		Value rpcwire.Quantity        `json:"value"`
		Fee   rpcwire.LenientQuantity `json:"fee"`
		Input rpcwire.Bytes           `json:"input"`
	}
	input := `{"to":"0x000000000000000000000000000000000000dEaD","gas":"0x5208","value":"0x0","fee":"0x00a","input":"0x"}`
	if err := json.Unmarshal([]byte(input), &tx); err != nil {
		panic(err)
	}
	output, _ := json.Marshal(tx)
	fmt.Println(string(output))

	err := json.Unmarshal([]byte(`{"value":"0x00a"}`), &tx)
	fmt.Println(errors.Is(err, rpcwire.ErrLeadingZero))
	// Output:
	// {"to":"0x000000000000000000000000000000000000dead","gas":"0x5208","value":"0x0","fee":"0xa","input":"0x"}
	// true
}
