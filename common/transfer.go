package common

var chargePrefix = []byte{0x02}

// ChargeTransferDetails prepends the protocol charge marker to the details
// of a transfer moving registration collateral into protocol custody.
func ChargeTransferDetails(owner []byte) []byte {
	return append(chargePrefix, owner...)
}
