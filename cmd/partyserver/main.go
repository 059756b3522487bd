// Package main is the party-server entry point (HTTP + WebSocket).
package main

import (
	"log"

	"github.com/friendships-game/partyserver/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
