package main

import (
	"fmt"
	"log"

	mochimo "github.com/adequatesystems/mochimo-wallet"
)

func main() {
	mnemonic := "tag volcano eight thank tide danger coast health above argue embrace heavy"

	w, err := mochimo.NewFromMnemonic(mnemonic)
	if err != nil {
		log.Fatal(err)
	}

	account, err := w.Derive(0)
	if err != nil {
		log.Fatal(err)
	}

	tagStr, err := account.TagString()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Account tag: %s\n", tagStr)
	fmt.Printf("Account tag (hex): %x\n", account.Tag)
	fmt.Printf("Deposit address (hex): %x\n", account.DepositAddress)

	kp, err := w.SpendKeypair(0, 0)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Spend-0 public key (hex): %x\n", kp.PublicKey)
}
