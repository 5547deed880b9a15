package minerstat_common

const (
	// MINERSTAT_COINS_DOMAIN is the coins endpoint without a scheme
	MINERSTAT_COINS_DOMAIN = "api.minerstat.com/v2/coins"

	// ContentTypeForm is sent on every request to keep parity with the upstream client
	ContentTypeForm = "application/x-www-form-urlencoded"

	UserAgent = "Mozilla/5.0 Minerstat-Proxy"
)

// Query parameter names understood by the coins endpoint
const (
	ParamList = "list"
	ParamAlgo = "algo"
)
