package main

import (
	"fmt"

	"github.com/TEENet-io/atomicswap-core/cmd"
	"github.com/spf13/viper"
)

const (
	ENV_CONFIG_FILE_PATH = "SWAP_ENGINE_CONFIG"
)

func main() {
	// Set overall config level to Debug
	// logconfig.ConfigDebugLogger()

	// Tool to read environment variables
	viper.AutomaticEnv()

	// Accessing an environment variable of configuration file location.
	_config_file := viper.GetString(ENV_CONFIG_FILE_PATH)
	fmt.Printf("Swap engine configuration file = %s\n", _config_file)

	if !cmd.FileExists(_config_file) {
		fmt.Printf("Swap engine configuration file not found: %s\n", _config_file)
		return
	}

	if !initializeViper(_config_file) {
		return
	}

	sec := PrepareSwapEngineConfig()

	fmt.Println("Starting swap engine... press Ctrl+C to kill the server")
	cmd.StartSwapEngineAndWait(sec)
}

func initializeViper(filePath string) bool {
	viper.SetConfigFile(filePath)
	if err := viper.ReadInConfig(); err != nil {
		fmt.Printf("Error reading configuration file, %s", err)
		return false
	}
	return true
}

// PrepareSwapEngineConfig reads configuration variables and returns a
// SwapEngineConfig.
func PrepareSwapEngineConfig() *cmd.SwapEngineConfig {
	dbDriver := viper.GetString("DB_DRIVER")
	if dbDriver == "" {
		dbDriver = "sqlite3"
	}

	return &cmd.SwapEngineConfig{
		DbDriver:   dbDriver,
		DbFilePath: viper.GetString("DB_FILE_PATH"),
		HttpIp:     viper.GetString("HTTP_IP"),
		HttpPort:   viper.GetString("HTTP_PORT"),
	}
}
