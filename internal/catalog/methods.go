package catalog

const docsBase = "https://zbd.dev/api-reference"

// builtin is the method list shipped with the page.
var builtin = []Method{
	{
		Name:        "getWallet",
		Entity:      EntityWallet,
		Description: "Retrieves the total balance of a given Project Wallet.",
		Examples: []Example{
			{Name: "API Reference: Get Wallet Balance", URL: docsBase + "/wallet/get"},
		},
	},
	{
		Name:        "createCharge",
		Entity:      EntityCharge,
		Description: "Creates a new Charge / Payment Request in the Bitcoin Lightning Network, payable by any Lightning Network wallet.",
		Params: []Param{
			{Name: "amount", Description: "The amount for the Charge -> in millisatoshis", Extra: "string"},
			{Name: "description", Description: "Note or comment for this Charge (visible to payer)", Extra: "string"},
			{Name: "expiresIn", Description: "Time until Charge expiration -> in seconds", Extra: "number"},
			{Name: "internalId", Description: "Open metadata string property", Extra: "string"},
			{Name: "callbackUrl", Description: "The endpoint ZBD will POST Charge updates to", Extra: "string"},
		},
		Examples: []Example{
			{Name: "API Reference: Create Charge", URL: docsBase + "/payments/create-charge"},
			{Name: "Dev Playground: Create Charge", URL: "https://nextjs.zbd.dev/playground/create-charge"},
		},
	},
	{
		Name:        "getCharge",
		Entity:      EntityCharge,
		Description: "Retrieves all the information related to a specific Charge / Payment Request.",
		Params: []Param{
			{Name: "chargeId", Description: "The ID of the Charge / Payment Request", Extra: "string"},
		},
		Examples: []Example{
			{Name: "API Reference: Get Charge", URL: docsBase + "/payments/get-charge"},
		},
	},
	{
		Name:        "decodeCharge",
		Entity:      EntityCharge,
		Description: "Decodes a Bitcoin Lightning Network Charge / Payment Request into its individual fields.",
		Params: []Param{
			{Name: "invoice", Description: "The Lightning Network Payment Request to decode", Extra: "string"},
		},
	},
	{
		Name:        "createStaticCharge",
		Entity:      EntityStaticCharge,
		Description: "Creates a new Static Charge / reusable QR code payable by any Lightning Network wallet.",
		Params: []Param{
			{Name: "allowedSlots", Description: "Number of payments this Static Charge can accept", Extra: "number"},
			{Name: "minAmount", Description: "Minimum allowed amount -> in millisatoshis", Extra: "string"},
			{Name: "maxAmount", Description: "Maximum allowed amount -> in millisatoshis", Extra: "string"},
			{Name: "description", Description: "Note or comment for this Static Charge (visible to payer)", Extra: "string"},
			{Name: "internalId", Description: "Open metadata string property", Extra: "string"},
			{Name: "callbackUrl", Description: "The endpoint ZBD will POST payment updates to", Extra: "string"},
			{Name: "successMessage", Description: "Message displayed to the payer after a successful payment", Extra: "string"},
		},
		Examples: []Example{
			{Name: "API Reference: Create Static Charge", URL: docsBase + "/static-charges/create"},
		},
	},
	{
		Name:        "updateStaticCharge",
		Entity:      EntityStaticCharge,
		Description: "Updates the configuration of an existing Static Charge.",
		Params: []Param{
			{Name: "staticChargeId", Description: "The ID of the Static Charge to update", Extra: "string"},
			{Name: "options", Description: "Any of the properties accepted by createStaticCharge", Extra: "object"},
		},
	},
	{
		Name:        "getStaticCharge",
		Entity:      EntityStaticCharge,
		Description: "Retrieves all the information related to a specific Static Charge.",
		Params: []Param{
			{Name: "staticChargeId", Description: "The ID of the Static Charge", Extra: "string"},
		},
	},
	{
		Name:        "createWithdrawalRequest",
		Entity:      EntityWithdrawalRequest,
		Description: "Creates a Withdrawal Request / LNURL-withdraw QR code that any Lightning Network wallet can scan to pull funds.",
		Params: []Param{
			{Name: "amount", Description: "The amount for the Withdrawal Request -> in millisatoshis", Extra: "string"},
			{Name: "description", Description: "Note or comment for this Withdrawal Request", Extra: "string"},
			{Name: "expiresIn", Description: "Time until expiration -> in seconds", Extra: "number"},
			{Name: "internalId", Description: "Open metadata string property", Extra: "string"},
			{Name: "callbackUrl", Description: "The endpoint ZBD will POST Withdrawal Request updates to", Extra: "string"},
		},
		Examples: []Example{
			{Name: "API Reference: Create Withdrawal Request", URL: docsBase + "/withdrawal-requests/create"},
		},
	},
	{
		Name:        "getWithdrawalRequest",
		Entity:      EntityWithdrawalRequest,
		Description: "Retrieves all the information related to a specific Withdrawal Request.",
		Params: []Param{
			{Name: "withdrawalRequestId", Description: "The ID of the Withdrawal Request", Extra: "string"},
		},
	},
	{
		Name:        "validateLightningAddress",
		Entity:      EntityLightningAddress,
		Description: "Checks whether a given Lightning Address is valid and able to receive payments.",
		Params: []Param{
			{Name: "lightningAddress", Description: "The Lightning Address to validate", Extra: "string"},
		},
	},
	{
		Name:        "sendLightningAddressPayment",
		Entity:      EntityLightningAddress,
		Description: "Sends Bitcoin payments directly to a Lightning Address.",
		Params: []Param{
			{Name: "lnAddress", Description: "The Lightning Address of the recipient", Extra: "string"},
			{Name: "amount", Description: "The amount to send -> in millisatoshis", Extra: "string"},
			{Name: "comment", Description: "Note or description of this payment", Extra: "string"},
			{Name: "internalId", Description: "Open metadata string property", Extra: "string"},
			{Name: "callbackUrl", Description: "The endpoint ZBD will POST payment updates to", Extra: "string"},
		},
		Examples: []Example{
			{Name: "API Reference: Pay to Lightning Address", URL: docsBase + "/lightning-address/send-payment"},
			{Name: "Dev Playground: Send to Lightning Address", URL: "https://nextjs.zbd.dev/playground/send-lightning-address"},
		},
	},
	{
		Name:        "createChargeFromLightningAddress",
		Entity:      EntityLightningAddress,
		Description: "Generates a Charge / Payment Request for a given Lightning Address.",
		Params: []Param{
			{Name: "lnaddress", Description: "The Lightning Address to create the Charge for", Extra: "string"},
			{Name: "amount", Description: "The amount for the Charge -> in millisatoshis", Extra: "string"},
			{Name: "description", Description: "Note or comment for this Charge", Extra: "string"},
		},
	},
	{
		Name:        "sendGamertagPayment",
		Entity:      EntityGamertag,
		Description: "Sends Bitcoin payments directly to a ZBD user by their ZBD Gamertag.",
		Params: []Param{
			{Name: "gamertag", Description: "The ZBD Gamertag of the recipient", Extra: "string"},
			{Name: "amount", Description: "The amount to send -> in millisatoshis", Extra: "string"},
			{Name: "description", Description: "Note or description of this payment", Extra: "string"},
		},
	},
	{
		Name:        "getGamertagTransaction",
		Entity:      EntityGamertag,
		Description: "Retrieves all the information related to a ZBD Gamertag payment.",
		Params: []Param{
			{Name: "transactionId", Description: "The ID of the Gamertag transaction", Extra: "string"},
		},
	},
	{
		Name:        "getUserIdByGamertag",
		Entity:      EntityGamertag,
		Description: "Retrieves the ZBD user ID associated with a given ZBD Gamertag.",
		Params: []Param{
			{Name: "gamertag", Description: "The ZBD Gamertag to resolve", Extra: "string"},
		},
	},
	{
		Name:        "getGamertagByUserId",
		Entity:      EntityGamertag,
		Description: "Retrieves the ZBD Gamertag associated with a given ZBD user ID.",
		Params: []Param{
			{Name: "userId", Description: "The ZBD user ID to resolve", Extra: "string"},
		},
	},
	{
		Name:        "createGamertagCharge",
		Entity:      EntityGamertag,
		Description: "Generates a Charge / Payment Request payable to a given ZBD Gamertag.",
		Params: []Param{
			{Name: "gamertag", Description: "The ZBD Gamertag of the recipient", Extra: "string"},
			{Name: "amount", Description: "The amount for the Charge -> in millisatoshis", Extra: "string"},
			{Name: "description", Description: "Note or comment for this Charge", Extra: "string"},
		},
	},
	{
		Name:        "isSupportedRegion",
		Entity:      EntityUtility,
		Description: "Checks whether a given IP address is in a region supported by ZBD.",
		Params: []Param{
			{Name: "ipAddress", Description: "The IP address to check", Extra: "string"},
		},
	},
	{
		Name:        "getZBDProdIps",
		Entity:      EntityUtility,
		Description: "Retrieves the list of IP addresses ZBD production servers use, for callback allow-listing.",
	},
	{
		Name:        "getBtcUsdExchangeRate",
		Entity:      EntityUtility,
		Description: "Retrieves the latest Bitcoin to US Dollar price.",
	},
	{
		Name:        "internalTransfer",
		Entity:      EntityUtility,
		Description: "Moves funds between two Project Wallets belonging to the same ZBD account.",
		Params: []Param{
			{Name: "amount", Description: "The amount to transfer -> in millisatoshis", Extra: "string"},
			{Name: "receiverWalletId", Description: "The Wallet ID of the receiving Project", Extra: "string"},
		},
	},
	{
		Name:        "sendKeysendPayment",
		Entity:      EntityKeysend,
		Description: "Sends a Keysend payment directly to a Lightning Network node public key.",
		Params: []Param{
			{Name: "amount", Description: "The amount to send -> in millisatoshis", Extra: "string"},
			{Name: "pubkey", Description: "The public key of the destination node", Extra: "string"},
			{Name: "tlvRecords", Description: "Custom TLV records attached to the payment", Extra: "array"},
			{Name: "metadata", Description: "Open metadata object", Extra: "object"},
			{Name: "callbackUrl", Description: "The endpoint ZBD will POST payment updates to", Extra: "string"},
		},
	},
	{
		Name:        "sendPayment",
		Entity:      EntityPayment,
		Description: "Pays a Bitcoin Lightning Network Charge / Payment Request.",
		Params: []Param{
			{Name: "invoice", Description: "The Lightning Network Payment Request to pay", Extra: "string"},
			{Name: "description", Description: "Note or comment for this payment", Extra: "string"},
			{Name: "internalId", Description: "Open metadata string property", Extra: "string"},
			{Name: "callbackUrl", Description: "The endpoint ZBD will POST payment updates to", Extra: "string"},
			{Name: "amount", Description: "Amount to pay, only for amountless Charges -> in millisatoshis", Extra: "string"},
		},
		Examples: []Example{
			{Name: "API Reference: Send Payment", URL: docsBase + "/payments/send-payment"},
		},
	},
	{
		Name:        "getPayment",
		Entity:      EntityPayment,
		Description: "Retrieves all the information related to a specific Payment.",
		Params: []Param{
			{Name: "paymentId", Description: "The ID of the Payment", Extra: "string"},
		},
	},
}

// Default returns the snapshot built from the method list shipped with the
// page.
func Default() *Catalog {
	return New(builtin, SourceBuiltin)
}

// SourceBuiltin is the Source of the shipped snapshot.
const SourceBuiltin = "builtin"
