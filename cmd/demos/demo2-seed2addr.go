package main

import (
	"crypto/rand"
	"fmt"
	"log"

	mochimo "github.com/adequatesystems/mochimo-wallet"
)

func main() {
	seed := make([]byte, 32)
	if _, err := rand.Read(seed); err != nil {
		log.Fatal(err)
	}

	fmt.Println("Random master seed:")
	fmt.Printf("%x\n\n", seed)

	w, err := mochimo.NewFromMasterSeed(seed)
	if err != nil {
		log.Fatal(err)
	}

	a0, err := w.Derive(0)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Account 0 tag: %x\nDeposit address: %x\n\n", a0.Tag, a0.DepositAddress)

	a9, err := w.Derive(9)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Account 9 tag: %x\nDeposit address: %x\n\n", a9.Tag, a9.DepositAddress)
}
