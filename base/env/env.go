package env

import (
	"os"

	"github.com/spf13/viper"

	"github.com/x-xyz/warplet/domain"
)

// PodName example: k8ssta-warplet-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}

// EnvName example: k8ssta
func EnvName() string {
	return os.Getenv("ENV_NAME")
}

// AppName example: api
func AppName() string {
	return os.Getenv("APP_NAME")
}

// Runtime reads the runtime capabilities from config. It is called once at
// startup and the result injected where needed.
func Runtime() domain.RuntimeEnv {
	return domain.RuntimeEnv{
		EmbeddedHost: viper.GetBool("runtime.embeddedHost"),
	}
}
