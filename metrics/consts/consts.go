package consts

const VaultLayerPromNamespace = "vaultlayer"
