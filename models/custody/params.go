// Copyright 2021 Optakt Labs OÜ
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not
// use this file except in compliance with the License. You may obtain a copy of
// the License at
//
//     https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
// WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
// License for the specific language governing permissions and limitations under
// the License.

package custody

// ChainID identifies one of the DigitalBits networks.
type ChainID string

func (c ChainID) String() string {
	return string(c)
}

const (
	DigitalBitsTestnet ChainID = "digitalbits-testnet"
	DigitalBitsLivenet ChainID = "digitalbits-livenet"
)

// Params bundles the chain-dependent constants needed to talk to a
// DigitalBits network. Frontier is the Horizon-compatible API of the network,
// so the URLs point at Frontier instances. The friendbot URL is empty on
// networks without a funding faucet.
type Params struct {
	ChainID      ChainID
	Passphrase   string
	FrontierURL  string
	FriendbotURL string
}

// ChainParams holds the parameters for all supported chains.
var ChainParams = map[ChainID]Params{
	DigitalBitsTestnet: {
		ChainID:      DigitalBitsTestnet,
		Passphrase:   "TestNet Global DigitalBits Network ; December 2020",
		FrontierURL:  "https://frontier.testnet.digitalbits.io",
		FriendbotURL: "https://frontier.testnet.digitalbits.io/friendbot",
	},
	DigitalBitsLivenet: {
		ChainID:      DigitalBitsLivenet,
		Passphrase:   "LiveNet Global DigitalBits Network ; February 2021",
		FrontierURL:  "https://frontier.livenet.digitalbits.io",
		FriendbotURL: "",
	},
}
