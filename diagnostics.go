package relate

import (
	"github.com/sirupsen/logrus"
)

// WarnFunc receives diagnostics about degenerate or suspicious input, such as
// rings with too few points or inconsistent side labels. It never aborts the
// computation.
type WarnFunc func(format string, args ...interface{})

func defaultWarn(format string, args ...interface{}) {
	logrus.Warnf("relate: "+format, args...)
}
