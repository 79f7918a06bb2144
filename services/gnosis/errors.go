package gnosis

import "fmt"

var (
	ErrInvalidPrivateKey = fmt.Errorf("invalid private key")
	ErrAddressMismatch   = fmt.Errorf("address does not match private key")
	ErrEmptyToken        = fmt.Errorf("upstream returned an empty token")
)
