package config

import "os"

const (
	listenAddrVar = "LISTEN_ADDR"
	staticDirVar  = "STATIC_FILE_DIRECTORY"
	appNameVar    = "APP_NAME"
)

type EnvConfig interface {
	GetListenAddr() string
	GetStaticFileDirectory() string
	GetAppName() string
	GetEnv() string
}

type EnvVars struct{}

var _ EnvConfig = EnvVars{}

func (EnvVars) GetListenAddr() string {
	return GetEnv(listenAddrVar, "0.0.0.0:3001")
}

func (EnvVars) GetStaticFileDirectory() string {
	return GetEnv(staticDirVar, "../frontend/build")
}

func (EnvVars) GetAppName() string {
	return GetEnv(appNameVar, "Photo Catalog")
}

func (EnvVars) GetEnv() string {
	env := os.Getenv("ENV")
	if env == "" {
		return "DEV"
	}
	return env
}

func GetEnv(envVar, defaultValue string) string {
	value := os.Getenv(envVar)
	if value == "" {
		return defaultValue
	}
	return value
}
