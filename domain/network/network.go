package network

// Network is one of the three mobile operators being compared
type Network string

const (
	Orange Network = "Orange"
	Mascom Network = "Mascom"
	BTC    Network = "BTC"
)

// All returns the networks in fixed presentation order
func All() []Network {
	return []Network{Orange, Mascom, BTC}
}

// Parse returns the network matching the given name, if any
func Parse(name string) (Network, bool) {
	switch Network(name) {
	case Orange, Mascom, BTC:
		return Network(name), true
	}
	return "", false
}

// String returns the operator name
func (n Network) String() string {
	return string(n)
}

// Website returns the operator's public site, used as the affiliate
// click-through target.
func (n Network) Website() string {
	switch n {
	case Orange:
		return "https://www.orange.co.bw"
	case Mascom:
		return "https://www.mascom.bw"
	case BTC:
		return "https://www.btc.bw"
	}
	return ""
}
