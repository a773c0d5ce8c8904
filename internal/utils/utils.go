package utils

import (
	"fmt"

	"github.com/dustin/go-humanize"
)

// Prize tier amounts in ETB. Tiers are fixed, not configurable.
const (
	secondPlaceAmount int64 = 100000
	thirdPlaceAmount  int64 = 50000
)

// PrizeForPlace resolves the prize label and amount for a place. Places 2 and
// 3 carry fixed cash tiers; every other place (including 1) wins the
// configured prize, which has no fixed numeric amount.
func PrizeForPlace(place int, configuredPrizeName string) (string, *int64) {
	switch place {
	case 2:
		amount := secondPlaceAmount
		return "100K ETB", &amount
	case 3:
		amount := thirdPlaceAmount
		return "50K ETB", &amount
	default:
		return configuredPrizeName, nil
	}
}

// WinnerMessage composes the announcement text sent to the winning user.
// Amounts are rendered with thousands separators.
func WinnerMessage(prizeName string, prizeAmount *int64, cycle, ticketNumber int) string {
	if prizeAmount != nil {
		return fmt.Sprintf("You won %s (%s ETB) for cycle %d with ticket #%d.",
			prizeName, humanize.Comma(*prizeAmount), cycle, ticketNumber)
	}
	return fmt.Sprintf("You won %s for cycle %d with ticket #%d.",
		prizeName, cycle, ticketNumber)
}
