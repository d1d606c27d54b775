package component

// Coin is a pooled collectible.
type Coin struct {
	Value int
}

var CoinComponent = New[Coin]()
