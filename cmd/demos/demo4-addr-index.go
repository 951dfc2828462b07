package main

import (
	"fmt"

	mochimo "github.com/adequatesystems/mochimo-wallet"
)

func main() {
	mnemonic := "tag volcano eight thank tide danger coast health above argue embrace heavy"
	w, err := mochimo.NewFromMnemonic(mnemonic)
	if err != nil {
		panic(err)
	}

	a0, err := w.Derive(0)
	if err != nil {
		panic(err)
	}
	fmt.Println("Account index 0:")
	fmt.Printf("\tTag:\t\t %x\n\tDeposit addr:\t %x\n", a0.Tag, a0.DepositAddress)

	a9, err := w.Derive(9)
	if err != nil {
		panic(err)
	}
	if a9.Tag == a0.Tag {
		panic("account 9 must not collide with account 0")
	}
	fmt.Println("Account index 9:")
	fmt.Printf("\tTag:\t\t %x\n\tDeposit addr:\t %x\n", a9.Tag, a9.DepositAddress)
}
