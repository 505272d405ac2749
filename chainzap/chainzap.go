// chainzap.go — zap fields that log an error's full cause chain.
//
// The core stays logging-free; this adapter is the bridge for programs that
// log through go.uber.org/zap. Fields are lazy: the chain is rendered only
// when the entry is actually encoded, so a filtered-out Debug call costs a
// field allocation and nothing else.
package chainzap

import (
	"go.uber.org/zap"

	errchain "github.com/xgx-io/xgx-errchain"
)

// Error returns a field keyed "error" carrying err's rendered cause chain.
// A nil err produces a no-op field.
//
//	logger.Warn("publish failed", chainzap.Error(err))
func Error(err error) zap.Field {
	return Field("error", err)
}

// Field is Error with an explicit key.
func Field(key string, err error) zap.Field {
	if err == nil {
		return zap.Skip()
	}
	// zap.Stringer defers String() to encode time.
	return zap.Stringer(key, errchain.New(err))
}
