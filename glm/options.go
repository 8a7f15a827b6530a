package glm

import (
	"log/slog"
	"os"
	"strconv"
	"sync/atomic"
)

// EnvNoUnsafe disables the pointer based transfers of unsafe.go when set to
// a true value, e.g. GLM_NOUNSAFE=1.
const EnvNoUnsafe = "GLM_NOUNSAFE"

var unsafeEnabled atomic.Bool

func init() {
	unsafeEnabled.Store(unsafeFromEnv())
}

func unsafeFromEnv() bool {
	value, ok := os.LookupEnv(EnvNoUnsafe)
	if !ok {
		return true
	}

	disabled, err := strconv.ParseBool(value)
	if err != nil {
		Logger().Warn("Ignoring invalid environment variable",
			slog.String("name", EnvNoUnsafe),
			slog.String("value", value),
		)

		return true
	}

	return !disabled
}

// UnsafeEnabled reports whether StoreTo, LoadFrom and the memory views may be used.
func UnsafeEnabled() bool {
	return unsafeEnabled.Load()
}

// SetUnsafeEnabled enables or disables the pointer based transfers for the
// whole process, overriding GLM_NOUNSAFE.
func SetUnsafeEnabled(enabled bool) {
	if unsafeEnabled.Swap(enabled) != enabled {
		Logger().Info("Unsafe memory access changed", slog.Bool("enabled", enabled))
	}
}
