package conf

type Conf struct {
	LogLevel string `json:"logLevel"`
	Vault    Vault
}

type Vault struct {
	Denom             string `json:"denom"`
	AssetDecimals     uint8  `json:"assetDecimals"`
	ShareDecimals     uint8  `json:"shareDecimals"`
	VirtualAssets     string `json:"virtualAssets"`
	VirtualShares     string `json:"virtualShares"`
	MinInitialDeposit string `json:"minInitialDeposit"`
	DeadShares        string `json:"deadShares"`
}

var content = `
logLevel = "info"

[vault]
denom = "uusdc"
assetDecimals = 6
shareDecimals = 18
virtualAssets = "1"
virtualShares = "1000000000000"
minInitialDeposit = "0"
deadShares = "0"
`
