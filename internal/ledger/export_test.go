package ledger

// ERC721TransferTopic exposes erc721TransferTopic to external tests.
var ERC721TransferTopic = erc721TransferTopic
