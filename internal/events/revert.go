package events

import "bytes"

// Selector of Error(string), the standard solidity revert encoding.
var revertSelector = []byte{0x08, 0xc3, 0x79, 0xa0}

// RevertReason extracts the human-readable reason from revert-encoded
// calldata. The second return value is false when the payload does not
// follow the Error(string) encoding.
func RevertReason(input []byte) (string, bool) {
	if len(input) < 4 || !bytes.Equal(input[:4], revertSelector) {
		return "", false
	}

	values, err := stringArgs.Unpack(input[4:])
	if err != nil || len(values) != 1 {
		return "", false
	}

	reason, ok := values[0].(string)
	if !ok {
		return "", false
	}

	return reason, true
}
