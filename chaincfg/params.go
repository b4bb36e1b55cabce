package chaincfg

import "fmt"

// Params holds the address and key version bytes for one Bitcoin network.
// The target network is always passed explicitly; there is no process-wide
// default.
type Params struct {
	Name string

	// PubKeyHashVersion is the leading version byte of base58check P2PKH
	// addresses on this network.
	PubKeyHashVersion byte

	// ScriptHashVersion is the leading version byte of base58check P2SH
	// addresses on this network.
	ScriptHashVersion byte

	// WIFVersion is the leading version byte of wallet-import-format
	// private keys on this network.
	WIFVersion byte
}

var (
	// MainNetParams defines the Bitcoin main network.
	MainNetParams = Params{
		Name:              "mainnet",
		PubKeyHashVersion: 0x00,
		ScriptHashVersion: 0x05,
		WIFVersion:        0x80,
	}

	// TestNet3Params defines the Bitcoin test network (version 3).
	TestNet3Params = Params{
		Name:              "testnet3",
		PubKeyHashVersion: 0x6f,
		ScriptHashVersion: 0xc4,
		WIFVersion:        0xef,
	}

	// RegressionNetParams defines the regression test network. It shares
	// version bytes with testnet3.
	RegressionNetParams = Params{
		Name:              "regtest",
		PubKeyHashVersion: 0x6f,
		ScriptHashVersion: 0xc4,
		WIFVersion:        0xef,
	}
)

// ParamsForName resolves a network name from configuration to its parameters.
func ParamsForName(name string) (*Params, error) {
	switch name {
	case MainNetParams.Name:
		return &MainNetParams, nil
	case TestNet3Params.Name, "testnet":
		return &TestNet3Params, nil
	case RegressionNetParams.Name:
		return &RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("unknown network %q", name)
	}
}
