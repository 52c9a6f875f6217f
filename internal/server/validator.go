package server

import (
	"fmt"
	"strings"

	"github.com/ohler55/ojg/jp"
)

// PayloadValidator rejects payloads missing the top-level fields every
// transaction must carry, before any mapping or persistence runs.
type PayloadValidator struct{}

var requiredFields = []struct {
	path jp.Expr
	name string
}{
	{jp.MustParseString("$.transactionId"), "transactionId"},
	{jp.MustParseString("$.transactionType"), "transactionType"},
	{jp.MustParseString("$.amount"), "amount"},
	{jp.MustParseString("$.currency"), "currency"},
}

func (PayloadValidator) Validate(doc interface{}) error {
	for _, f := range requiredFields {
		found := f.path.Get(doc)
		if len(found) == 0 || found[0] == nil {
			return fmt.Errorf("%s is required", f.name)
		}
		if s, ok := found[0].(string); ok && strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", f.name)
		}
	}
	return nil
}
